package dispatcher

import (
	"context"

	"github.com/google/uuid"
	"github.com/mercuriomkt/messenger-webhook/internal/messenger"
	"github.com/rs/zerolog"
)

// ErrUnsupportedObject is returned for webhook objects other than "page".
const ErrUnsupportedObject = constError("unsupported webhook object")

type Responder interface {
	HandleMessage(msg *messenger.Message) (*messenger.Reply, bool)
	HandlePostback(pb *messenger.Postback) (*messenger.Reply, bool)
}

type ReplyPublisher interface {
	PublishReply(ctx context.Context, req *messenger.SendRequest) error
}

type DedupStore interface {
	Seen(ctx context.Context, key string) (bool, error)
}

// Dispatcher routes webhook events to the responder and queues the replies.
type Dispatcher struct {
	responder Responder
	publisher ReplyPublisher
	dedup     DedupStore
}

// New creates a Dispatcher. dedup may be nil to answer every delivery.
func New(responder Responder, publisher ReplyPublisher, dedup DedupStore) *Dispatcher {
	return &Dispatcher{
		responder: responder,
		publisher: publisher,
		dedup:     dedup,
	}
}

// Dispatch handles the first event of every entry, in entry order. Reply
// delivery happens later; failures to queue a reply are logged, not returned.
func (d *Dispatcher) Dispatch(ctx context.Context, envelope *messenger.WebhookEnvelope) error {
	if envelope.Object != messenger.ObjectPage {
		return ErrUnsupportedObject
	}
	logger := zerolog.Ctx(ctx).With().Str("batchId", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	for i := range envelope.Entry {
		entry := &envelope.Entry[i]
		if len(entry.Messaging) == 0 {
			logger.Debug().Str("entryId", entry.ID).Msg("Entry has no messaging events")
			continue
		}
		if len(entry.Messaging) > 1 {
			// The platform batches at most one event per entry in practice; extra events are not handled.
			logger.Warn().Str("entryId", entry.ID).Int("dropped", len(entry.Messaging)-1).Msg("Ignoring extra messaging events")
		}
		d.dispatchEvent(ctx, &entry.Messaging[0])
	}
	return nil
}

func (d *Dispatcher) dispatchEvent(ctx context.Context, event *messenger.MessagingEvent) {
	psid := event.Sender.ID
	logger := zerolog.Ctx(ctx).With().Str("senderPsid", psid).Str("kind", event.Kind.String()).Logger()

	var (
		reply *messenger.Reply
		ok    bool
	)
	switch event.Kind {
	case messenger.EventKindMessage:
		if d.isDuplicate(ctx, event.Message.MID) {
			logger.Info().Str("mid", event.Message.MID).Msg("Skipping redelivered message")
			return
		}
		reply, ok = d.responder.HandleMessage(event.Message)
	case messenger.EventKindPostback:
		reply, ok = d.responder.HandlePostback(event.Postback)
	case messenger.EventKindUnknown:
		logger.Debug().Msg("Skipping unhandled messaging event")
		return
	default:
		logger.Debug().Msg("Skipping unhandled messaging event")
		return
	}
	if !ok {
		logger.Debug().Msg("No reply for event")
		return
	}

	if err := d.publisher.PublishReply(ctx, messenger.NewSendRequest(psid, reply)); err != nil {
		logger.Error().Err(err).Msg("Failed to queue reply")
		return
	}
	logger.Debug().Msg("Reply queued")
}

func (d *Dispatcher) isDuplicate(ctx context.Context, mid string) bool {
	if d.dedup == nil || mid == "" {
		return false
	}
	seen, err := d.dedup.Seen(ctx, mid)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("mid", mid).Msg("Duplicate check failed, answering anyway")
		return false
	}
	return seen
}

type constError string

func (e constError) Error() string {
	return string(e)
}
