package bark

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jichangee/ai-chat/internal/config"
)

type Options struct {
	Group string
	Icon  string
	Sound string
	URL   string
}

type Client struct {
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Bark.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Push sends one notification through a Bark device URL such as
// https://api.day.app/<device key>.
func (c *Client) Push(ctx context.Context, barkURL, title, body string, opts Options) error {
	endpoint, err := PushURL(barkURL, title, body, opts)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

// PushURL renders the GET endpoint Bark expects: title and body as escaped
// path segments, options as query parameters.
func PushURL(barkURL, title, body string, opts Options) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(barkURL), "/")
	if base == "" {
		return "", errors.New("bark url is empty")
	}

	endpoint := base + "/" + url.PathEscape(title) + "/" + url.PathEscape(body)

	params := url.Values{}
	if opts.Group != "" {
		params.Set("group", opts.Group)
	}
	if opts.Icon != "" {
		params.Set("icon", opts.Icon)
	}
	if opts.Sound != "" {
		params.Set("sound", opts.Sound)
	}
	if opts.URL != "" {
		params.Set("url", opts.URL)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	return endpoint, nil
}
