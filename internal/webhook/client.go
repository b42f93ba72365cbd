package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bjornmorten/stoat-wh/internal/httpclient"
)

// Info is the decoded representation of a webhook returned by the API.
// Token is a pointer so its presence in the response can be detected.
type Info struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CreatorID   string  `json:"creator_id"`
	ChannelID   string  `json:"channel_id"`
	Permissions int64   `json:"permissions"`
	Token       *string `json:"token"`
}

// Client performs webhook operations against a resolved locator URL.
type Client struct {
	http   *httpclient.Client
	logger zerolog.Logger
	debug  bool
}

// NewClient creates a webhook API client. When debug is set, successful
// response bodies are pretty-printed to stdout.
func NewClient(hc *httpclient.Client, logger zerolog.Logger, debug bool) *Client {
	return &Client{
		http:   hc,
		logger: logger.With().Str("module", "webhook").Logger(),
		debug:  debug,
	}
}

// NewIdempotencyKey generates a fresh unique token for the
// Idempotency-Key request header. One key per invocation, never derived
// from payload contents.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// Get fetches the webhook's details. It returns both the decoded info
// and the raw response body for raw-JSON output.
func (c *Client) Get(ctx context.Context, url string) (*Info, []byte, error) {
	body, err := c.request(ctx, http.MethodGet, url, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	var info Info
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, nil, fmt.Errorf("failed to decode webhook info: %w", err)
	}
	return &info, body, nil
}

// Edit updates the webhook. The request body carries the new name only
// when one was supplied; otherwise an empty object is sent.
func (c *Client) Edit(ctx context.Context, url, name string) error {
	payload := map[string]any{}
	if name != "" {
		payload["name"] = name
	}
	_, err := c.request(ctx, http.MethodPatch, url, payload, nil)
	return err
}

// Delete removes the webhook.
func (c *Client) Delete(ctx context.Context, url string) error {
	_, err := c.request(ctx, http.MethodDelete, url, nil, nil)
	return err
}

// Send posts a message payload through the webhook with a fresh
// Idempotency-Key header.
func (c *Client) Send(ctx context.Context, url string, payload map[string]any) error {
	headers := map[string]string{"Idempotency-Key": NewIdempotencyKey()}
	_, err := c.request(ctx, http.MethodPost, url, payload, headers)
	return err
}

// request performs one HTTP request and classifies non-success
// responses into an APIError.
func (c *Client) request(ctx context.Context, method, url string, body any, headers map[string]string) ([]byte, error) {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	resp, err := c.http.Do(&httpclient.Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Body:    encoded,
		Context: ctx,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := classifyResponse(resp.StatusCode, resp.Body)
		c.logger.Debug().
			Str("method", method).
			Str("url", url).
			Int("status_code", resp.StatusCode).
			Str("error_type", apiErr.Body.Type).
			Msg("API returned non-success status")
		return nil, apiErr
	}

	if c.debug && len(resp.Body) > 0 {
		fmt.Fprintln(os.Stdout, PrettyJSON(resp.Body))
	}
	return resp.Body, nil
}
