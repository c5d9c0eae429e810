package graph

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"roomBooker/internal/config"
)

const (
	tokenURLFormat = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	defaultScope   = "https://graph.microsoft.com/.default"

	// DefaultSubscriptionTTL is the provider's cap for mailbox event subscriptions.
	DefaultSubscriptionTTL = 4230 * time.Minute

	maxErrorBody = 4096
)

// Client issues authenticated calls to the calendar provider.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	subscriptionTTL time.Duration
	now             func() time.Time
}

type Option func(*Client)

// WithSubscriptionTTL sets how far in the future new and renewed subscriptions expire.
func WithSubscriptionTTL(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.subscriptionTTL = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New builds a client authenticating with the client-credentials flow. The
// token is cached by the returned client and refreshed transparently.
func New(ctx context.Context, cfg config.Graph, opts ...Option) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf(tokenURLFormat, cfg.TenantID),
		Scopes:       []string{defaultScope},
	}

	base := &http.Client{Timeout: cfg.Timeout}
	httpClient := cc.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	httpClient.Timeout = cfg.Timeout

	return NewWithHTTPClient(httpClient, cfg.BaseURL, opts...), nil
}

// NewWithHTTPClient builds a client around an already-authenticated http.Client.
func NewWithHTTPClient(httpClient *http.Client, baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient:      httpClient,
		baseURL:         strings.TrimRight(baseURL, "/"),
		subscriptionTTL: DefaultSubscriptionTTL,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do sends a request and decodes a JSON response into out. A nil out or a
// 204 response is a void success.
func (c *Client) do(ctx context.Context, method, path string, body, out any, header http.Header) error {
	endpoint := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		endpoint = c.baseURL + path
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("graph: marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("graph: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ProviderError{StatusCode: resp.StatusCode, Body: string(b)}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("graph: decode response: %w", err)
	}

	return nil
}

func utcPreference() http.Header {
	h := http.Header{}
	h.Set("Prefer", `outlook.timezone="UTC"`)
	return h
}

// collect follows @odata.nextLink until the listing is exhausted.
func collect[T any](ctx context.Context, c *Client, path string, header http.Header) ([]T, error) {
	var items []T

	for path != "" {
		var p page[T]
		if err := c.do(ctx, http.MethodGet, path, nil, &p, header); err != nil {
			return nil, err
		}
		items = append(items, p.Value...)
		path = p.NextLink
	}

	return items, nil
}
