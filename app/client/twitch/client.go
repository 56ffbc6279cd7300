package twitch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"ttvcli/pkg/config"

	"github.com/samber/do"
)

var errorBodyLimit int64 = 512

// Client talks to the public Twitch endpoints with the static identity from config.
// Calls are never retried.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewClient uses the *http.Client registered in di, if any.
func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	httpClient, err := do.Invoke[*http.Client](di)
	if err != nil {
		httpClient = &http.Client{Timeout: cfg.Twitch.Timeout}
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}, nil
}

type headerSet int

const (
	// client id and user agent
	identityHeaders headerSet = iota
	// identity plus bearer token
	authHeaders
	// user agent only
	browserHeaders
)

func (c *Client) newRequest(ctx context.Context, method, requestURL string, body io.Reader, headers headerSet) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request failed: %w", err)
	}

	req.Header.Set("User-Agent", c.cfg.Twitch.UserAgent)

	switch headers {
	case authHeaders:
		req.Header.Set("Authorization", "Bearer "+c.cfg.Twitch.OAuthToken)
		req.Header.Set("Client-Id", c.cfg.Twitch.ClientID)
	case identityHeaders:
		req.Header.Set("Client-Id", c.cfg.Twitch.ClientID)
	}

	return req, nil
}

// do executes req and returns its body. Transport failures and non-2xx statuses become *TransportError.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: redact(req.URL), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &TransportError{URL: redact(req.URL), StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: redact(req.URL), Err: fmt.Errorf("reading body failed: %w", err)}
	}

	return body, nil
}

// FetchText downloads a playlist or any other plain text document.
func (c *Client) FetchText(ctx context.Context, textURL string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, textURL, nil, browserHeaders)
	if err != nil {
		return "", err
	}

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
