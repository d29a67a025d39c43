package communication

// RabbitMQConfig contains the parameters to reach the broker and the queue where data is published
type RabbitMQConfig struct {
	URL              string                 `yaml:"url"`
	Queue            QueueDeclarationConfig `yaml:"queue"`
	PublishingConfig PublishingConfig       `yaml:"publishing_config"`
}

// QueueDeclarationConfig contains the parameters to declare a RabbitMQ queue
type QueueDeclarationConfig struct {
	Name             string `yaml:"name"`
	Durable          bool   `yaml:"durable"`
	DeleteWhenUnused bool   `yaml:"delete_when_unused"`
	Exclusive        bool   `yaml:"exclusive"`
	NoWait           bool   `yaml:"no_wait"`
}

// PublishingConfig config use it for publishing messages in a RabbitMQ queue
type PublishingConfig struct {
	Mandatory   bool   `yaml:"mandatory"`
	Immediate   bool   `yaml:"immediate"`
	ContentType string `yaml:"content_type"`
}
