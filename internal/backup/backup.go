package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sandeepkv93/remindd/internal/model"
)

var (
	// ErrTransport covers network failures and non-2xx responses.
	ErrTransport = errors.New("backup: transport failure")
	// ErrRejected means the endpoint answered but reported an error of its
	// own, even on a 200.
	ErrRejected = errors.New("backup: rejected by endpoint")
)

type payload struct {
	Secret    string           `json:"secret"`
	Reminders []model.Reminder `json:"reminders"`
}

type endpointResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Client pushes the full reminder list to a user-controlled endpoint with a
// single authenticated POST. There is no retry; failures surface verbatim.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Send posts {secret, reminders} to endpoint and returns the endpoint's
// success message.
func (c *Client) Send(ctx context.Context, endpoint, secret string, reminders []model.Reminder) (string, error) {
	if endpoint == "" {
		return "", fmt.Errorf("%w: no endpoint configured", ErrTransport)
	}

	body, err := json.Marshal(payload{Secret: secret, Reminders: reminders})
	if err != nil {
		return "", fmt.Errorf("backup: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %s", ErrTransport, resp.Status)
	}

	var out endpointResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: unreadable response: %v", ErrTransport, err)
	}
	if out.Status == "error" {
		return "", fmt.Errorf("%w: %s", ErrRejected, out.Message)
	}
	if out.Message == "" {
		return "backup successful", nil
	}
	return out.Message, nil
}
