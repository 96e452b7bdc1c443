package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bookeasy/config"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// TokenSource yields a bearer token for a Graph call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// clientCredentialsSource fetches a fresh app-only token from the Azure
// AD v2 endpoint on every call. Graph tokens are short-lived; fetching
// per call trades a little latency for never holding a stale credential.
type clientCredentialsSource struct {
	conf *clientcredentials.Config
}

func (s *clientCredentialsSource) Token(ctx context.Context) (string, error) {
	tok, err := s.conf.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to acquire graph token: %w", err)
	}
	return tok.AccessToken, nil
}

// Client wraps the Microsoft Graph REST API for calendar-event creation
// and mail dispatch on a fixed administrative mailbox.
type Client struct {
	HTTPClient *http.Client
	Tokens     TokenSource
	BaseURL    string
	Mailbox    string
	Timezone   string
	Logger     *zap.Logger
}

// NewClient builds a Graph client from the process configuration.
func NewClient(logger *zap.Logger) *Client {
	cfg := config.AppConfig
	creds := &clientcredentials.Config{
		ClientID:     cfg.MSClientID,
		ClientSecret: cfg.MSClientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.MSTenantID),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Tokens:     &clientCredentialsSource{conf: creds},
		BaseURL:    defaultBaseURL,
		Mailbox:    cfg.AdminMailbox,
		Timezone:   cfg.BookingTimezone,
		Logger:     logger,
	}
}

// postJSON sends an authenticated POST and returns the response status
// and body. No retries here: webhook redelivery is the retry policy.
func (c *Client) postJSON(ctx context.Context, url string, payload interface{}) (int, []byte, error) {
	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return 0, nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal graph payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build graph request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("graph request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read graph response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
