package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/config"
	"bikeshare/domain/business/sessionreport"
)

const publishTimeout = 5 * time.Second

// ReportPublisher delivers the report of each analysis session
type ReportPublisher interface {
	Publish(ctx context.Context, report *sessionreport.SessionReport) error
	Close() error
}

// New returns a publisher for the report queue config. If publishing is disabled the reports are dropped
func New(cfg config.ReportQueueConfig) (ReportPublisher, error) {
	if !cfg.Enabled {
		return NewNoop(), nil
	}
	return NewRabbitPublisher(cfg.RabbitMQConfig)
}

// NoopPublisher drops every report
type NoopPublisher struct{}

func NewNoop() *NoopPublisher {
	return &NoopPublisher{}
}

func (np *NoopPublisher) Publish(_ context.Context, report *sessionreport.SessionReport) error {
	log.Debugf("[publisher: noop][session: %s] report dropped, publishing is disabled", report.GetSessionID())
	return nil
}

func (np *NoopPublisher) Close() error {
	return nil
}

// queuePublisher is the part of communication.RabbitMQ used to publish reports
type queuePublisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte) error
	KillBadBunny() error
}

// RabbitPublisher publishes the reports as JSON in a RabbitMQ queue
type RabbitPublisher struct {
	rabbitMQ  queuePublisher
	queueName string
}

// NewRabbitPublisher connects to RabbitMQ and declares the report queue
func NewRabbitPublisher(cfg communication.RabbitMQConfig) (*RabbitPublisher, error) {
	rabbitMQ, err := communication.NewRabbitMQ(cfg.URL, cfg.PublishingConfig)
	if err != nil {
		return nil, err
	}

	queueName, err := rabbitMQ.DeclareQueue(cfg.Queue)
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}

	log.Infof("[publisher: rabbitmq][queue: %s][status: OK] queue declared correctly!", queueName)
	return newRabbitPublisher(rabbitMQ, queueName), nil
}

func newRabbitPublisher(rabbitMQ queuePublisher, queueName string) *RabbitPublisher {
	return &RabbitPublisher{
		rabbitMQ:  rabbitMQ,
		queueName: queueName,
	}
}

// Publish sends the report to the report queue
func (rp *RabbitPublisher) Publish(ctx context.Context, report *sessionreport.SessionReport) error {
	reportBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshalling session report: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = rp.rabbitMQ.PublishMessageInQueue(ctx, rp.queueName, reportBytes)
	if err != nil {
		return fmt.Errorf("error publishing report of session %s: %w", report.GetSessionID(), err)
	}

	metadata := report.GetMetadata()
	log.Debugf("[publisher: rabbitmq][session: %s][stage: %s][status: OK] %s published in %s", report.GetSessionID(), metadata.GetStage(), metadata.GetType(), rp.queueName)
	return nil
}

func (rp *RabbitPublisher) Close() error {
	return rp.rabbitMQ.KillBadBunny()
}
