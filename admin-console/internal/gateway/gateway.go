package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNetwork marks requests that never reached the backend or never returned.
var ErrNetwork = errors.New("network error")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource is consulted on every request, so a token change is visible to
// the next call without rebuilding the gateway.
type TokenSource interface {
	Token() string
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	AuthScheme string
}

type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	return e.Message
}

// Unauthorized reports a rejected or expired session. Callers may show a
// hint; nothing here ends the session.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return "Network Error"
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

type Gateway struct {
	config Config
	client HTTPClient
	tokens TokenSource
}

func New(config Config, client HTTPClient, tokens TokenSource) *Gateway {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.AuthScheme == "" {
		config.AuthScheme = "Bearer"
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Gateway{
		config: config,
		client: client,
		tokens: tokens,
	}
}

func (g *Gateway) Get(ctx context.Context, path string, query url.Values, out any) error {
	return g.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (g *Gateway) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return g.Do(ctx, http.MethodPut, path, query, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string, out any) error {
	return g.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do sends one request and decodes a 2xx JSON body into out. It never
// retries.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	target := g.config.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := g.token(); token != "" {
		req.Header.Set("Authorization", g.config.AuthScheme+" "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: %s %s failed: %v", method, target, err)
		return &NetworkError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, Path: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, data),
			Body:    data,
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (g *Gateway) token() string {
	if g.tokens == nil {
		return ""
	}
	return g.tokens.Token()
}

// errorMessage pulls the backend's own wording out of an error payload.
func errorMessage(status int, data []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err == nil {
		for _, key := range []string{"message", "error", "details"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				return msg
			}
		}
	}

	if text := strings.TrimSpace(string(data)); text != "" && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		if len(text) > 200 {
			text = text[:200]
		}
		return text
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}
