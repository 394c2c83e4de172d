package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbox/model"
)

func TestNewValidatesEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		endpoint    string
		expectError bool
	}{
		{name: "empty uses default", endpoint: "", expectError: false},
		{name: "http", endpoint: "http://127.0.0.1:8000/chat", expectError: false},
		{name: "https", endpoint: "https://chat.example.com/api/chat", expectError: false},
		{name: "relative path", endpoint: "/chat", expectError: true},
		{name: "ftp scheme", endpoint: "ftp://example.com/chat", expectError: true},
		{name: "missing host", endpoint: "http:///chat", expectError: true},
		{name: "unparseable", endpoint: "http://[::1", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.endpoint)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			if tt.endpoint == "" {
				assert.Equal(t, DefaultEndpoint, c.Endpoint())
			}
		})
	}
}

func TestExchangeSendsContract(t *testing.T) {
	var gotMethod, gotContentType, gotUA string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotUA = r.Header.Get("User-Agent")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply": "Hi there!"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/chat", WithUserAgent("chatbox/test"))
	require.NoError(t, err)

	reply, err := c.Exchange(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", reply)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "chatbox/test", gotUA)
	assert.Equal(t, map[string]any{"message": "Hello"}, gotBody)
}

func TestExchangeResponses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantReply  string
		wantKind   model.ErrorKind
		wantStatus int
	}{
		{name: "reply", status: 200, body: `{"reply":"ok"}`, wantReply: "ok"},
		{name: "empty reply is valid", status: 200, body: `{"reply":""}`, wantReply: ""},
		{name: "extra fields ignored", status: 200, body: `{"reply":"ok","model":"x"}`, wantReply: "ok"},
		{name: "created status", status: 201, body: `{"reply":"ok"}`, wantReply: "ok"},
		{name: "not json", status: 200, body: `<html>oops</html>`, wantKind: model.KindProtocol},
		{name: "empty body", status: 200, body: ``, wantKind: model.KindProtocol},
		{name: "missing reply", status: 200, body: `{"message":"hi"}`, wantKind: model.KindProtocol},
		{name: "null reply", status: 200, body: `{"reply":null}`, wantKind: model.KindProtocol},
		{name: "non-string reply", status: 200, body: `{"reply":42}`, wantKind: model.KindProtocol},
		{name: "array body", status: 200, body: `["reply"]`, wantKind: model.KindProtocol},
		{name: "server error", status: 500, body: `{"reply":"ignored"}`, wantKind: model.KindProtocol, wantStatus: 500},
		{name: "not found", status: 404, body: `not found`, wantKind: model.KindProtocol, wantStatus: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := New(srv.URL)
			require.NoError(t, err)

			reply, err := c.Exchange(context.Background(), "Hello")
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantReply, reply)
				return
			}

			require.Error(t, err)
			var exErr *model.ExchangeError
			require.True(t, errors.As(err, &exErr), "error must be *model.ExchangeError, got %T", err)
			assert.Equal(t, tt.wantKind, exErr.Kind)
			assert.Equal(t, tt.wantStatus, exErr.StatusCode)
		})
	}
}

func TestExchangeNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	c, err := New(endpoint)
	require.NoError(t, err)

	_, err = c.Exchange(context.Background(), "Hello")
	require.Error(t, err)
	assert.Equal(t, model.KindNetwork, model.KindOf(err))
}

func TestExchangeTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := New(srv.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.Exchange(context.Background(), "Hello")
	require.Error(t, err)
	assert.Equal(t, model.KindNetwork, model.KindOf(err))
}

func TestExchangeCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reply":"late"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Exchange(ctx, "Hello")
	require.Error(t, err)
	assert.Equal(t, model.KindNetwork, model.KindOf(err))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExchangeOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reply":"` + strings.Repeat("a", maxResponseBytes) + `"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.Exchange(context.Background(), "Hello")
	require.Error(t, err)
	assert.Equal(t, model.KindProtocol, model.KindOf(err))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPClient(t *testing.T) {
	var seen []string
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = append(seen, r.URL.String())
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"reply":"from transport"}`)),
			Request:    r,
		}, nil
	})}

	c, err := New("http://chat.invalid/chat", WithHTTPClient(hc))
	require.NoError(t, err)

	reply, err := c.Exchange(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "from transport", reply)
	assert.Equal(t, []string{"http://chat.invalid/chat"}, seen)
}
