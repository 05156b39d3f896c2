package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

const (
	// SignatureHeader carries the HMAC-SHA256 of the raw body keyed with the app secret.
	SignatureHeader = "X-Hub-Signature-256"
	signaturePrefix = "sha256="
)

// SignatureMiddleware rejects requests whose body signature does not match appSecret.
func SignatureMiddleware(appSecret string) fiber.Handler {
	secret := []byte(appSecret)
	return func(c *fiber.Ctx) error {
		header := c.Get(SignatureHeader)
		if header == "" {
			return richerrors.Error{
				ExternalMsg: "Missing signature",
				Err:         errors.New("missing " + SignatureHeader + " header"),
				Code:        fiber.StatusUnauthorized,
			}
		}
		if !ValidSignature(secret, c.Body(), header) {
			return richerrors.Error{
				ExternalMsg: "Invalid signature",
				Err:         errors.New("signature mismatch"),
				Code:        fiber.StatusUnauthorized,
			}
		}
		return c.Next()
	}
}

// ValidSignature checks a "sha256=<hex>" header against body.
func ValidSignature(secret, body []byte, header string) bool {
	hexSig, ok := strings.CutPrefix(header, signaturePrefix)
	if !ok {
		return false
	}
	got, err := hex.DecodeString(hexSig)
	if err != nil {
		return false
	}
	return hmac.Equal(got, Sign(secret, body))
}

// Sign returns the raw HMAC-SHA256 of body.
func Sign(secret, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return mac.Sum(nil)
}
