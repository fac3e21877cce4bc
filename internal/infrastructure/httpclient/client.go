// Package httpclient is the authenticated request pipeline. Every call
// to the platform API is built here, guaranteeing consistent headers
// and a single interception point for authentication rejection.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/core/session"
	"github.com/eduline/eduline-client/internal/metrics"
)

const contentTypeJSON = "application/json"

// Client dispatches requests against the configured API base address.
// The bearer header is decided from the shared Session at the moment
// each request is built — the decision is never cached across requests.
type Client struct {
	baseURL string
	http    *http.Client
	sess    *session.Session
	log     zerolog.Logger

	mu             sync.RWMutex
	onUnauthorized func()
}

// New creates a Client. The Session is shared by reference with the
// rest of the application; the pipeline only ever reads it.
func New(baseURL string, sess *session.Session, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		sess:    sess,
		log:     log,
	}
}

// OnUnauthorized registers the hook invoked on every 401 response,
// synchronously, before the error reaches the original caller. There
// is exactly one hook; registering replaces any previous one.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, r, contentTypeJSON, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	r, err := encodeJSON(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, r, contentTypeJSON, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]*domain.FileUpload, out any) error {
	body, contentType, err := encodeMultipart(fields, files)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

func (c *Client) PutMultipart(ctx context.Context, path string, fields map[string]string, files map[string]*domain.FileUpload, out any) error {
	body, contentType, err := encodeMultipart(fields, files)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

func encodeJSON(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(buf), nil
}

// do builds, dispatches, and decodes a single request.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	// 1. Standard headers on every request.
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// 2. Bearer credential iff a token is held right now. Never send
	// an empty or stale Authorization header.
	if token := c.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "error").Inc()
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.handleError(method, path, resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// handleError turns a non-2xx response into a domain.APIError. A 401
// additionally tears the session down via the registered hook before
// the error is allowed to propagate — an expired or revoked token is
// discovered and handled on the very next call, whatever it was for.
func (c *Client) handleError(method, path string, status int, raw []byte) error {
	apiErr := &domain.APIError{Status: status}
	// Malformed or empty error bodies are fine; the zero Message falls
	// back to a generic display string downstream.
	_ = json.Unmarshal(raw, apiErr)

	if status == http.StatusUnauthorized {
		metrics.AuthRejectionsTotal.Inc()
		c.log.Info().Str("method", method).Str("path", path).Msg("authentication rejected, clearing session")

		c.mu.RLock()
		fn := c.onUnauthorized
		c.mu.RUnlock()
		if fn != nil {
			fn()
		}
	} else {
		c.log.Debug().Int("status", status).Str("method", method).Str("path", path).Msg("api error")
	}

	return apiErr
}
