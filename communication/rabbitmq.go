package communication

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultContentType = "application/json"

// RabbitMQ holds one connection and one channel used to publish session data
type RabbitMQ struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	publishing PublishingConfig
}

// NewRabbitMQ dials url and opens the channel used by every publish
func NewRabbitMQ(url string, publishingConfig PublishingConfig) (*RabbitMQ, error) {
	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("error opening RabbitMQ channel: %w", err)
	}

	if publishingConfig.ContentType == "" {
		publishingConfig.ContentType = defaultContentType
	}

	return &RabbitMQ{
		connection: connection,
		channel:    channel,
		publishing: publishingConfig,
	}, nil
}

// DeclareQueue declares a named queue and returns the name the broker assigned to it
func (r *RabbitMQ) DeclareQueue(queueConfig QueueDeclarationConfig) (string, error) {
	queue, err := r.channel.QueueDeclare(
		queueConfig.Name,
		queueConfig.Durable,
		queueConfig.DeleteWhenUnused,
		queueConfig.Exclusive,
		queueConfig.NoWait,
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("error declaring queue %s: %w", queueConfig.Name, err)
	}
	return queue.Name, nil
}

// PublishMessageInQueue publishes message through the default exchange, so it is routed to queueName.
// Messages are persistent to survive a broker restart
func (r *RabbitMQ) PublishMessageInQueue(ctx context.Context, queueName string, message []byte) error {
	publishing := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  r.publishing.ContentType,
		Body:         message,
	}

	err := r.channel.PublishWithContext(ctx, "", queueName, r.publishing.Mandatory, r.publishing.Immediate, publishing)
	if err != nil {
		return fmt.Errorf("error publishing in queue %s: %w", queueName, err)
	}
	return nil
}

// KillBadBunny closes the channel and then the connection
func (r *RabbitMQ) KillBadBunny() error {
	if err := r.channel.Close(); err != nil {
		_ = r.connection.Close()
		return fmt.Errorf("error closing RabbitMQ channel: %w", err)
	}

	if err := r.connection.Close(); err != nil {
		return fmt.Errorf("error closing RabbitMQ connection: %w", err)
	}
	return nil
}
