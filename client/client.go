package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"chatbox/model"
)

const (
	DefaultEndpoint = "http://127.0.0.1:8000/chat"
	DefaultTimeout  = 60 * time.Second

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// Request is the wire body sent to the endpoint.
type Request struct {
	Message string `json:"message"`
}

// Response is the wire body expected back. Reply is a pointer so that a
// missing field can be told apart from an empty string.
type Response struct {
	Reply *string `json:"reply"`
}

// Client posts chat messages to a single configured endpoint. It implements
// model.Exchanger.
type Client struct {
	http      *http.Client
	endpoint  string
	userAgent string
}

type Option func(*Client)

// WithTimeout bounds each exchange. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client. The timeout of hc is
// used as-is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client for endpoint. An empty endpoint selects
// DefaultEndpoint. The endpoint must be an absolute http or https URL.
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if err := ValidateEndpoint(endpoint); err != nil {
		return nil, err
	}

	c := &Client{
		http:      &http.Client{Timeout: DefaultTimeout},
		endpoint:  endpoint,
		userAgent: "chatbox",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ValidateEndpoint checks that endpoint is an absolute http(s) URL with a host.
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.Wrap(err, "invalid endpoint URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("invalid endpoint URL %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return errors.Errorf("invalid endpoint URL %q: missing host", endpoint)
	}
	return nil
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Exchange sends message and returns the reply. Failures are reported as
// *model.ExchangeError: KindNetwork when no response was received and
// KindProtocol when the response does not carry a string "reply".
func (c *Client) Exchange(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(Request{Message: message})
	if err != nil {
		return "", model.NetworkError(errors.Wrap(err, "encode request"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", model.NetworkError(errors.Wrap(err, "build request"))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("exchange: request failed")
		return "", model.NetworkError(errors.Wrap(err, "post message"))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", model.NetworkError(errors.Wrap(err, "read response"))
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("exchange: response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &model.ExchangeError{
			Kind:       model.KindProtocol,
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected status %s", resp.Status),
		}
	}

	return decodeReply(data)
}

// decodeReply extracts the "reply" string from a response body.
func decodeReply(data []byte) (string, error) {
	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return "", model.ProtocolError(errors.Wrap(err, "decode response"))
	}
	if out.Reply == nil {
		return "", model.ProtocolError(errors.New(`response has no "reply" field`))
	}
	return *out.Reply, nil
}
