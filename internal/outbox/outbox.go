// Package outbox decouples webhook acknowledgement from reply delivery. Replies
// are published on a watermill topic and consumed by the reply listener.
package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wm_kafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/mercuriomkt/messenger-webhook/internal/messenger"
	"github.com/rs/zerolog"
)

const (
	// RecipientMetadataKey carries the PSID for log correlation.
	RecipientMetadataKey = "recipient_id"

	defaultChannelBuffer = 256
)

type Config struct {
	// BrokerAddresses selects the Kafka backend when non-empty.
	BrokerAddresses []string
	ClusterConfig   *sarama.Config
	Topic           string
	GroupID         string
}

// Outbox publishes replies and hands them to a consumer.
type Outbox struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	// shared is set when publisher and subscriber are the same pub/sub.
	shared bool
	topic  string
	logger *zerolog.Logger
}

// New creates an in-process outbox, or a Kafka backed one when brokers are configured.
func New(cfg *Config, logger *zerolog.Logger) (*Outbox, error) {
	if cfg.Topic == "" {
		return nil, errors.New("outbox topic is required")
	}
	wmLogger := watermill.NewStdLogger(false, false)

	if len(cfg.BrokerAddresses) == 0 {
		pubSub := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: defaultChannelBuffer,
		}, wmLogger)
		return &Outbox{
			publisher:  pubSub,
			subscriber: pubSub,
			shared:     true,
			topic:      cfg.Topic,
			logger:     logger,
		}, nil
	}

	publisher, err := wm_kafka.NewPublisher(
		wm_kafka.PublisherConfig{
			Brokers:   cfg.BrokerAddresses,
			Marshaler: wm_kafka.DefaultMarshaler{},
		},
		wmLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	saramaSubscriberConfig := wm_kafka.DefaultSaramaSubscriberConfig()
	if cfg.ClusterConfig != nil {
		saramaSubscriberConfig.Version = cfg.ClusterConfig.Version
		saramaSubscriberConfig.Consumer.Offsets.Initial = cfg.ClusterConfig.Consumer.Offsets.Initial
	}

	subscriber, err := wm_kafka.NewSubscriber(
		wm_kafka.SubscriberConfig{
			Brokers:               cfg.BrokerAddresses,
			Unmarshaler:           wm_kafka.DefaultMarshaler{},
			OverwriteSaramaConfig: saramaSubscriberConfig,
			ConsumerGroup:         cfg.GroupID,
		},
		wmLogger,
	)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create kafka subscriber: %w", err)
	}

	return &Outbox{
		publisher:  publisher,
		subscriber: subscriber,
		topic:      cfg.Topic,
		logger:     logger,
	}, nil
}

// PublishReply queues req for delivery. It returns once the message is handed
// to the backend, not once it is delivered.
func (o *Outbox) PublishReply(_ context.Context, req *messenger.SendRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal reply: %w", err)
	}
	msg := message.NewMessage(uuid.NewString(), payload)
	msg.Metadata.Set(RecipientMetadataKey, req.Recipient.ID)

	if err := o.publisher.Publish(o.topic, msg); err != nil {
		return fmt.Errorf("failed to publish reply to %s: %w", o.topic, err)
	}
	return nil
}

// Start subscribes to the reply topic and runs process on the message channel.
// Subscribing happens before Start returns, so no reply published afterwards is missed.
func (o *Outbox) Start(ctx context.Context, process func(messages <-chan *message.Message)) error {
	messages, err := o.subscriber.Subscribe(ctx, o.topic)
	if err != nil {
		return fmt.Errorf("could not subscribe to topic %s: %w", o.topic, err)
	}
	o.logger.Info().Str("topic", o.topic).Msg("Reply outbox consumer started")

	go process(messages)
	return nil
}

// Close shuts down the publisher and the subscriber.
func (o *Outbox) Close() error {
	pubErr := o.publisher.Close()
	if o.shared {
		return pubErr
	}
	return errors.Join(pubErr, o.subscriber.Close())
}

// DecodeReply reads a SendRequest published by PublishReply.
func DecodeReply(msg *message.Message) (*messenger.SendRequest, error) {
	var req messenger.SendRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reply %s: %w", msg.UUID, err)
	}
	return &req, nil
}
