package sendapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/mercuriomkt/messenger-webhook/internal/messenger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	t.Parallel()

	t.Run("successful delivery", func(t *testing.T) {
		t.Parallel()
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v2.6/me/messages", r.URL.Path)
			assert.Equal(t, "page-token", r.URL.Query().Get("access_token"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var req messenger.SendRequest
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "psid-1", req.Recipient.ID)
			require.NotNil(t, req.Message)
			assert.Equal(t, "hello", req.Message.Text)

			w.Header().Set("Content-Type", "application/json")
			_, _ = fmt.Fprint(w, `{"recipient_id":"psid-1","message_id":"mid.1"}`)
		}))
		defer testServer.Close()

		client, err := NewClient(testServer.URL+"/v2.6", "page-token", nil)
		require.NoError(t, err)

		resp, err := client.Send(context.Background(), messenger.NewSendRequest("psid-1", messenger.TextReply("hello")))
		require.NoError(t, err)
		assert.Equal(t, "psid-1", resp.RecipientID)
		assert.Equal(t, "mid.1", resp.MessageID)
	})

	t.Run("graph API error", func(t *testing.T) {
		t.Parallel()
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = fmt.Fprint(w, `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190,"fbtrace_id":"abc"}}`)
		}))
		defer testServer.Close()

		client, err := NewClient(testServer.URL, "bad-token", nil)
		require.NoError(t, err)

		_, err = client.Send(context.Background(), messenger.NewSendRequest("psid-1", messenger.TextReply("hello")))
		require.Error(t, err)

		richErr, ok := richerrors.AsRichError(err)
		require.True(t, ok)
		assert.Equal(t, SendFailureCode, richErr.Code)
		require.Error(t, richErr.Err)
		assert.Contains(t, richErr.Err.Error(), "Invalid OAuth access token.")
		assert.Contains(t, richErr.Err.Error(), "code=190")
	})

	t.Run("server error with plain body", func(t *testing.T) {
		t.Parallel()
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = fmt.Fprint(w, "server error")
		}))
		defer testServer.Close()

		client, err := NewClient(testServer.URL, "page-token", nil)
		require.NoError(t, err)

		_, err = client.Send(context.Background(), messenger.NewSendRequest("psid-1", messenger.TextReply("hello")))
		require.Error(t, err)
		richErr, ok := richerrors.AsRichError(err)
		require.True(t, ok)
		assert.Equal(t, SendFailureCode, richErr.Code)
		assert.Contains(t, richErr.Err.Error(), "server error")
	})

	t.Run("network failure does not leak the token", func(t *testing.T) {
		t.Parallel()
		client, err := NewClient("http://invalid.localhost:0", "secret-token", nil)
		require.NoError(t, err)

		_, err = client.Send(context.Background(), messenger.NewSendRequest("psid-1", messenger.TextReply("hello")))
		require.Error(t, err)
		richErr, ok := richerrors.AsRichError(err)
		require.True(t, ok)
		assert.Equal(t, SendFailureCode, richErr.Code)
		assert.NotContains(t, richErr.Err.Error(), "secret-token")
	})

	t.Run("request timeout", func(t *testing.T) {
		t.Parallel()
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer testServer.Close()

		client, err := NewClient(testServer.URL, "page-token", &http.Client{Timeout: 10 * time.Millisecond})
		require.NoError(t, err)

		_, err = client.Send(context.Background(), messenger.NewSendRequest("psid-1", messenger.TextReply("hello")))
		require.Error(t, err)
		richErr, ok := richerrors.AsRichError(err)
		require.True(t, ok)
		assert.Equal(t, SendFailureCode, richErr.Code)
	})

	t.Run("missing message is rejected before any call", func(t *testing.T) {
		t.Parallel()
		calls := 0
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer testServer.Close()

		client, err := NewClient(testServer.URL, "page-token", nil)
		require.NoError(t, err)

		_, err = client.Send(context.Background(), &messenger.SendRequest{Recipient: messenger.User{ID: "psid-1"}})
		require.Error(t, err)
		assert.Zero(t, calls)
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()
		_, err := NewClient("://invalid-url", "page-token", nil)
		require.Error(t, err)
	})
}
