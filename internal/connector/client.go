// Package connector delivers outbound activities to the channel
// service. Every send targets the service URL carried on the activity
// being sent, so replies follow the conversation even when it migrates
// between endpoints.
package connector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ziadkadry99/echobot/internal/activity"
)

const defaultSendTimeout = 15 * time.Second

// DeliveryError reports a failed outbound delivery. Deliveries are
// single attempts: the caller logs the error but never retries.
type DeliveryError struct {
	ConversationID string
	StatusCode     int
	Err            error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("delivering to conversation %s: status %d", e.ConversationID, e.StatusCode)
	}
	return fmt.Sprintf("delivering to conversation %s: %v", e.ConversationID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Client posts activities to a channel service.
type Client struct {
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a connector client. A nil httpClient falls back to
// a default client; timeout bounds each individual send.
func NewClient(httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Client{http: httpClient, timeout: timeout}
}

// SendActivity delivers act to the conversation named on it. The
// activity is sent whole or not at all; a non-2xx response or
// transport failure yields a *DeliveryError.
func (c *Client) SendActivity(ctx context.Context, act activity.Activity) error {
	if act.ServiceURL == "" {
		return &DeliveryError{ConversationID: act.Conversation.ID, Err: errors.New("activity has no serviceUrl")}
	}
	if act.Conversation.ID == "" {
		return &DeliveryError{Err: errors.New("activity has no conversation id")}
	}

	body, err := activity.Encode(act)
	if err != nil {
		return &DeliveryError{ConversationID: act.Conversation.ID, Err: err}
	}

	target := fmt.Sprintf("%s/v3/conversations/%s/activities",
		strings.TrimRight(act.ServiceURL, "/"), url.PathEscape(act.Conversation.ID))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{ConversationID: act.Conversation.ID, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &DeliveryError{ConversationID: act.Conversation.ID, Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DeliveryError{
			ConversationID: act.Conversation.ID,
			StatusCode:     resp.StatusCode,
			Err:            fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return nil
}
