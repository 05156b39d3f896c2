// Command webhook_receiver is a local stand-in for the Send API. Point
// GRAPH_API_URL at it to see the replies the webhook would send.
package main

import (
	"flag"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mercuriomkt/messenger-webhook/internal/messenger"
)

func main() {
	logger := logging.GetAndSetDefaultLogger("webhook-receiver")
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/:version/me/messages", func(c *fiber.Ctx) error {
		if c.Query("access_token") == "" {
			return c.Status(fiber.StatusBadRequest).JSON(messenger.GraphErrorResponse{
				Error: messenger.GraphError{
					Message: "An access token is required to request this resource.",
					Type:    "OAuthException",
					Code:    104,
				},
			})
		}
		var req messenger.SendRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(messenger.GraphErrorResponse{
				Error: messenger.GraphError{
					Message: fmt.Sprintf("Invalid body: %v", err),
					Type:    "OAuthException",
					Code:    100,
				},
			})
		}

		event := logger.Info().Str("version", c.Params("version")).Str("recipientId", req.Recipient.ID)
		if req.Message != nil && req.Message.Text != "" {
			event = event.Str("text", req.Message.Text)
		}
		event.RawJSON("body", c.Body()).Msg("Send request received")

		return c.JSON(messenger.SendResponse{
			RecipientID: req.Recipient.ID,
			MessageID:   "m_" + uuid.NewString(),
		})
	})

	logger.Info().Str("addr", *addr).Msg("Webhook receiver listening")
	if err := app.Listen(*addr); err != nil {
		logger.Fatal().Err(err).Msg("Receiver failed")
	}
}
