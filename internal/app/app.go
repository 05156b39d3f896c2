package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/mercuriomkt/messenger-webhook/docs" // Import Swagger docs
	"github.com/mercuriomkt/messenger-webhook/internal/config"
	"github.com/mercuriomkt/messenger-webhook/internal/controllers/replylistener"
	"github.com/mercuriomkt/messenger-webhook/internal/controllers/webhook"
	"github.com/mercuriomkt/messenger-webhook/internal/outbox"
	"github.com/mercuriomkt/messenger-webhook/internal/services/dedup"
	"github.com/mercuriomkt/messenger-webhook/internal/services/dispatcher"
	"github.com/mercuriomkt/messenger-webhook/internal/services/responder"
	"github.com/mercuriomkt/messenger-webhook/internal/services/sendapi"
	"github.com/rs/zerolog"
)

// CreateServers wires the reply pipeline and returns the webhook app. Resources
// are released when ctx is done.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	sendClient, err := sendapi.NewClient(settings.GraphAPIURL, settings.PageAccessToken, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create send API client: %w", err)
	}

	dedupStore, err := newDedupStore(ctx, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dedup store: %w", err)
	}

	replyOutbox, err := startReplyConsumer(ctx, logger, settings, sendClient)
	if err != nil {
		return nil, fmt.Errorf("failed to start reply consumer: %w", err)
	}

	go func() {
		<-ctx.Done()
		if err := replyOutbox.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close reply outbox")
		}
		if closer, ok := dedupStore.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				logger.Error().Err(err).Msg("Failed to close dedup store")
			}
		}
	}()

	eventDispatcher := dispatcher.New(responder.New(), replyOutbox, dedupStore)
	return CreateFiberApp(logger, eventDispatcher, settings), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, eventDispatcher webhook.Dispatcher, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Messenger webhook...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := webhook.NewWebhookController(eventDispatcher, settings.VerifyToken)
	logger.Info().Msg("Registering routes...")

	app.Get("/webhook", webhookController.VerifySubscription)
	if settings.AppSecret != "" {
		app.Post("/webhook", webhook.SignatureMiddleware(settings.AppSecret), webhookController.ReceiveEvents)
	} else {
		logger.Warn().Msg("APP_SECRET is not set, event signatures are not checked")
		app.Post("/webhook", webhookController.ReceiveEvents)
	}

	return app
}

// startReplyConsumer creates the reply outbox and starts delivering its messages.
func startReplyConsumer(ctx context.Context, logger zerolog.Logger, settings *config.Settings, sender replylistener.Sender) (*outbox.Outbox, error) {
	clusterConfig := sarama.NewConfig()
	clusterConfig.Version = sarama.V2_8_1_0
	clusterConfig.Consumer.Offsets.Initial = sarama.OffsetNewest

	replyOutbox, err := outbox.New(&outbox.Config{
		BrokerAddresses: settings.Brokers(),
		ClusterConfig:   clusterConfig,
		Topic:           settings.ReplyTopic,
		GroupID:         settings.ConsumerGroup,
	}, &logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create reply outbox: %w", err)
	}

	listener := replylistener.New(sender, settings.SendTimeout)
	listenerCtx := logger.With().Str("component", "reply-listener").Logger().WithContext(ctx)
	err = replyOutbox.Start(listenerCtx, func(messages <-chan *message.Message) {
		if err := listener.ProcessReplies(listenerCtx, messages); err != nil && ctx.Err() == nil {
			logger.Error().Err(err).Msg("Reply listener stopped")
		}
	})
	if err != nil {
		_ = replyOutbox.Close()
		return nil, err
	}

	if len(settings.Brokers()) == 0 {
		logger.Info().Msgf("In-process reply outbox started on topic: %s", settings.ReplyTopic)
	} else {
		logger.Info().Msgf("Kafka reply outbox started on topic: %s", settings.ReplyTopic)
	}
	return replyOutbox, nil
}

func newDedupStore(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (dispatcher.DedupStore, error) {
	if settings.RedisAddr == "" {
		return dedup.NewMemoryStore(settings.DedupTTL), nil
	}
	store, err := dedup.NewRedisStore(ctx, settings.RedisAddr, settings.RedisPassword, settings.DedupTTL)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("addr", settings.RedisAddr).Msg("Using redis for duplicate detection")
	return store, nil
}
