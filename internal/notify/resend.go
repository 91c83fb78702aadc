package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoAPIKey is returned when sending is attempted without a configured key
var ErrNoAPIKey = errors.New("notify: no API key configured")

const resendEndpoint = "https://api.resend.com/emails"

// Email is one outbound message for the Resend API
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ResendClient sends transactional email through the Resend REST API.
// The zero value is unusable; construct with NewResendClient.
type ResendClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewResendClient builds a client for the hosted Resend API
func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		apiKey:   apiKey,
		endpoint: resendEndpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// NewResendClientWithEndpoint is used by tests to point the client at a
// local server
func NewResendClientWithEndpoint(apiKey, endpoint string) *ResendClient {
	c := NewResendClient(apiKey)
	c.endpoint = endpoint
	return c
}

// Send posts one email and returns the provider's decoded response body
func (c *ResendClient) Send(ctx context.Context, email Email) (map[string]interface{}, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	body, err := json.Marshal(email)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decoded, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	return decoded, nil
}
