package sendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/mercuriomkt/messenger-webhook/internal/messenger"
)

const (
	// SendFailureCode is the code returned when the Send API call failed
	SendFailureCode = -1

	defaultSendTimeout = 10 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 4096
	userAgent           = "messenger-webhook/1.0"
)

// Client posts replies to the Messenger Send API.
type Client struct {
	client      *http.Client
	endpoint    string
	accessToken string
}

// NewClient creates a Client for graphAPIURL (for example https://graph.facebook.com/v2.6).
// A nil httpClient gets a default with a 10s timeout.
func NewClient(graphAPIURL, accessToken string, httpClient *http.Client) (*Client, error) {
	base, err := url.ParseRequestURI(graphAPIURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph API URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	return &Client{
		client:      httpClient,
		endpoint:    base.JoinPath("me", "messages").String(),
		accessToken: accessToken,
	}, nil
}

// Send performs one POST of req. It does not retry.
func (c *Client) Send(ctx context.Context, req *messenger.SendRequest) (*messenger.SendResponse, error) {
	if req == nil || req.Message == nil {
		return nil, errors.New("send request has no message")
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create send request: %w", err)
	}
	query := httpReq.URL.Query()
	query.Set("access_token", c.accessToken)
	httpReq.URL.RawQuery = query.Encode()

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to POST to send API: %w", redactToken(err)),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to read send API response: %w", err),
		}
	}

	if resp.StatusCode >= 400 {
		return nil, richerrors.Error{
			Code: SendFailureCode,
			Err:  statusError(resp.StatusCode, respBody),
		}
	}

	var sendResp messenger.SendResponse
	if len(respBody) > 0 {
		// the body is informational, a 2xx is already a delivery
		_ = json.Unmarshal(respBody, &sendResp)
	}
	return &sendResp, nil
}

// statusError prefers the Graph API error object over the raw body.
func statusError(status int, body []byte) error {
	var graphErr messenger.GraphErrorResponse
	if err := json.Unmarshal(body, &graphErr); err == nil && graphErr.Error.Message != "" {
		return fmt.Errorf("send API returned status code %d: %s (type=%s code=%d fbtrace_id=%s)",
			status, graphErr.Error.Message, graphErr.Error.Type, graphErr.Error.Code, graphErr.Error.FBTraceID)
	}
	return fmt.Errorf("send API returned status code %d: %s", status, string(body))
}

// redactToken strips the request URL, and with it the access token, from transport errors.
func redactToken(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
