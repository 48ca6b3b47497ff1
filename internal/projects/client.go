// Package projects implements the client for the remote projects API.
// It performs a single GET per call and never retries.
package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Zachkp/portfolio/internal/models"
)

// Path is the projects endpoint relative to the API base URL.
const Path = "/api/projects"

const tracerName = "github.com/Zachkp/portfolio/internal/projects"

// ErrUnsuccessful is returned when the API answers with "success": false.
var ErrUnsuccessful = errors.New("projects api reported failure")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("projects api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("projects api returned status %d: %s", e.StatusCode, e.Body)
}

// Client fetches the project list
type Client struct {
	url        string
	httpClient *http.Client
	tracer     trace.Tracer
	timeout    time.Duration
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTracerProvider sets the provider used for the projects.list span
func WithTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// WithTimeout bounds each call. Zero disables the bound.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		url:        strings.TrimRight(baseURL, "/") + Path,
		httpClient: http.DefaultClient,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the full endpoint URL
func (c *Client) URL() string {
	return c.url
}

// ListProjects issues one GET and decodes the envelope.
// An absent or null "data" with "success": true yields the empty list.
func (c *Client) ListProjects(ctx context.Context) (models.ProjectList, error) {
	ctx, span := c.tracer.Start(ctx, "projects.list",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", c.url)),
	)
	defer span.End()

	list, err := c.list(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return models.ProjectList{}, err
	}

	span.SetAttributes(attribute.Int("projects.count", list.Len()))
	return list, nil
}

func (c *Client) list(ctx context.Context, span trace.Span) (models.ProjectList, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return models.ProjectList{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ProjectList{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ProjectList{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.ProjectList{}, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(body)), 200),
		}
	}

	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.ProjectList{}, fmt.Errorf("parse response: %w", err)
	}
	if !env.Success {
		return models.ProjectList{}, ErrUnsuccessful
	}

	return env.Data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
