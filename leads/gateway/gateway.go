// Package gateway forwards contact form submissions to the lead API.
//
// A submission is checked for its required fields, then sent in exactly one
// POST. Failures are returned to the caller as-is: the client never retries,
// queues or stores a submission that did not go through.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"hqd-api/models"

	"github.com/go-playground/validator/v10"
)

// DefaultTimeout bounds a single lead request
const DefaultTimeout = 15 * time.Second

// ErrBaseURLRequired is returned by New when no backend URL is configured
var ErrBaseURLRequired = errors.New("gateway: backend base URL is required")

// Client talks to the lead endpoints of one backend
type Client struct {
	baseURL  string
	http     *http.Client
	timeout  time.Duration
	validate *validator.Validate
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New returns a Client for the backend at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	v := validator.New()
	// report json names so errors match the form fields
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	c := &Client{
		baseURL:  baseURL,
		http:     http.DefaultClient,
		timeout:  DefaultTimeout,
		validate: v,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SubmitLead sends one submission and returns the backend's acknowledgment
// body untouched. Any 2xx counts as accepted, whatever the body holds, and
// the body may be empty.
//
// The submission is forwarded as given, except that an empty BarType is sent
// as models.DefaultBarType.
func (c *Client) SubmitLead(ctx context.Context, sub models.LeadSubmission) ([]byte, error) {
	if err := c.validate.Struct(sub); err != nil {
		return nil, newValidationError(err)
	}
	if sub.BarType == "" {
		sub.BarType = models.DefaultBarType
	}

	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("gateway: encode lead: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/leads", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: respBody}
	}
	return respBody, nil
}

// HealthStatus is the backend's self-reported state
type HealthStatus struct {
	Status       string `json:"status"`
	EmailEnabled bool   `json:"email_enabled"`
	Timestamp    string `json:"timestamp,omitempty"`
	// Placeholder is set when the backend could not be reached or understood
	Placeholder bool `json:"-"`
}

// Health asks the backend for its status. Any failure yields a "healthy"
// placeholder instead of an error.
func (c *Client) Health(ctx context.Context) HealthStatus {
	placeholder := HealthStatus{Status: "healthy", Placeholder: true}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return placeholder
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return placeholder
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return placeholder
	}

	var hs HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&hs); err != nil || hs.Status == "" {
		return placeholder
	}
	return hs
}
