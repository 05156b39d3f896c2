package replylistener

import (
	"context"
	"fmt"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/mercuriomkt/messenger-webhook/internal/messenger"
	"github.com/mercuriomkt/messenger-webhook/internal/outbox"
	"github.com/mercuriomkt/messenger-webhook/internal/services/sendapi"
	"github.com/rs/zerolog"
)

type Sender interface {
	Send(ctx context.Context, req *messenger.SendRequest) (*messenger.SendResponse, error)
}

// ReplyListener delivers queued replies through the Send API, once each.
type ReplyListener struct {
	sender      Sender
	sendTimeout time.Duration
}

// New creates a ReplyListener. Each delivery is bounded by sendTimeout.
func New(sender Sender, sendTimeout time.Duration) *ReplyListener {
	return &ReplyListener{
		sender:      sender,
		sendTimeout: sendTimeout,
	}
}

// ProcessReplies consumes messages until ctx is done or the channel closes.
func (l *ReplyListener) ProcessReplies(ctx context.Context, messages <-chan *message.Message) error {
	logger := zerolog.Ctx(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				// channel is closed
				return nil
			}
			if ctx.Err() != nil {
				// check context since select is not deterministic when multiple cases are ready
				msg.Nack()
				return ctx.Err()
			}
			msg.SetContext(ctx)
			if err := l.processReply(msg); err != nil {
				logger.Error().Err(err).
					Str("messageId", msg.UUID).
					Str("recipientId", msg.Metadata.Get(outbox.RecipientMetadataKey)).
					Msg("Failed to deliver reply")
			}
			// delivery is best effort, failed replies are not redelivered
			msg.Ack()
		}
	}
}

func (l *ReplyListener) processReply(msg *message.Message) error {
	req, err := outbox.DecodeReply(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(msg.Context(), l.sendTimeout)
	defer cancel()

	resp, err := l.sender.Send(ctx, req)
	if err != nil {
		if richErr, ok := richerrors.AsRichError(err); ok && richErr.Code == sendapi.SendFailureCode {
			return fmt.Errorf("send API rejected reply: %w", err)
		}
		return fmt.Errorf("failed to send reply: %w", err)
	}
	event := zerolog.Ctx(ctx).Info().Str("recipientId", req.Recipient.ID)
	if resp != nil {
		event = event.Str("messageId", resp.MessageID)
	}
	event.Msg("Reply sent")
	return nil
}
