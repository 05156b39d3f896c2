package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/mercuriomkt/messenger-webhook/internal/messenger"
	"github.com/mercuriomkt/messenger-webhook/internal/services/dispatcher"
	"github.com/rs/zerolog"
)

const (
	modeSubscribe = "subscribe"

	// EventReceived is the acknowledgement body for accepted event batches.
	EventReceived = "EVENT_RECEIVED"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, envelope *messenger.WebhookEnvelope) error
}

// WebhookController serves the Messenger webhook endpoint.
type WebhookController struct {
	dispatcher  Dispatcher
	verifyToken string
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(dispatcher Dispatcher, verifyToken string) *WebhookController {
	return &WebhookController{
		dispatcher:  dispatcher,
		verifyToken: verifyToken,
	}
}

// VerifySubscription godoc
// @Summary      Verify the webhook subscription
// @Description  Answers the platform's subscription handshake. The challenge is echoed back when the mode is "subscribe" and the verify token matches.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Subscription mode, always subscribe"
// @Param        hub.verify_token  query  string  true  "Verify token configured on the app"
// @Param        hub.challenge     query  string  false "Value to echo back"
// @Success      200  {string}  string  "The challenge"
// @Failure      400  "Missing hub.mode or hub.verify_token"
// @Failure      403  "Verify token mismatch"
// @Router       /webhook [get]
func (w *WebhookController) VerifySubscription(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		return richerrors.Error{
			ExternalMsg: "hub.mode and hub.verify_token are required",
			Code:        fiber.StatusBadRequest,
		}
	}

	if mode != modeSubscribe || subtle.ConstantTimeCompare([]byte(token), []byte(w.verifyToken)) != 1 {
		zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).Msg("Rejected webhook verification")
		c.Status(fiber.StatusForbidden)
		return nil
	}

	zerolog.Ctx(c.UserContext()).Info().Msg("Webhook verified")
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// ReceiveEvents godoc
// @Summary      Receive messaging events
// @Description  Accepts a batch of page events. Replies are queued and delivered after the response; delivery failures never change the status code.
// @Tags         Webhook
// @Accept       json
// @Produce      plain
// @Param        X-Hub-Signature-256  header  string                      false  "sha256=<hex HMAC of the body>, checked when an app secret is configured"
// @Param        request              body    messenger.WebhookEnvelope   true   "Event batch"
// @Success      200  {string}  string  "EVENT_RECEIVED"
// @Failure      400  "Invalid request payload"
// @Failure      401  "Invalid signature"
// @Failure      404  "Object is not a page"
// @Router       /webhook [post]
func (w *WebhookController) ReceiveEvents(c *fiber.Ctx) error {
	var envelope messenger.WebhookEnvelope
	if err := c.BodyParser(&envelope); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	if err := w.dispatcher.Dispatch(c.UserContext(), &envelope); err != nil {
		if errors.Is(err, dispatcher.ErrUnsupportedObject) {
			return richerrors.Error{
				ExternalMsg: fmt.Sprintf("Unsupported object %q", envelope.Object),
				Err:         err,
				Code:        fiber.StatusNotFound,
			}
		}
		return richerrors.Error{
			ExternalMsg: "Failed to process events",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	return c.Status(fiber.StatusOK).SendString(EventReceived)
}
