// Package api implements the HTTP client for the well-being backend.
//
// The backend is an opaque collaborator: it computes anonymized metrics
// from physiological signals and exposes them as plain JSON over GET.
// This package only fetches and decodes; it never retries, caches, or
// validates metric ranges. Failures are classified into three types
// (NetworkError, HTTPError, DecodeError) so callers can surface a
// precise message and simply try again on the next poll.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/classpulse/classpulse/internal/logger"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8765"

// Endpoint paths on the backend.
const (
	PathStudentInsights   = "/student/insights"
	PathInstructorSummary = "/instructor/summary"
	PathHealth            = "/health"
)

// Client fetches metric snapshots from the backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// NewClient creates a client for the given base URL.
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     logger.NewEnvLogger("[api]"),
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// SetHTTPClient replaces the underlying HTTP client (tests, custom timeouts).
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

// studentWire mirrors StudentInsights with pointer fields so missing
// keys can be distinguished from zero values during validation.
type studentWire struct {
	Focus         *float64 `json:"focus"`
	Stress        *float64 `json:"stress"`
	Engagement    *float64 `json:"engagement"`
	Relaxation    *float64 `json:"relaxation"`
	SignalQuality *string  `json:"signal_quality"`
	Message       string   `json:"message"`
}

type instructorWire struct {
	Module             *string  `json:"module"`
	AvgFocus           *float64 `json:"avg_focus"`
	AvgStress          *float64 `json:"avg_stress"`
	AvgEngagement      *float64 `json:"avg_engagement"`
	StudentsHighStress *int     `json:"students_high_stress"`
	StudentsTotal      *int     `json:"students_total"`
}

// StudentInsights fetches the current student snapshot.
func (c *Client) StudentInsights(ctx context.Context) (*StudentInsights, error) {
	url := c.baseURL + PathStudentInsights

	var wire studentWire
	if err := c.get(ctx, url, &wire); err != nil {
		return nil, err
	}

	if wire.Focus == nil || wire.Stress == nil || wire.Engagement == nil ||
		wire.Relaxation == nil || wire.SignalQuality == nil {
		return nil, &DecodeError{URL: url, Err: fmt.Errorf("missing metric fields in student insights")}
	}

	return &StudentInsights{
		Focus:         *wire.Focus,
		Stress:        *wire.Stress,
		Engagement:    *wire.Engagement,
		Relaxation:    *wire.Relaxation,
		SignalQuality: *wire.SignalQuality,
		Message:       wire.Message,
	}, nil
}

// InstructorSummary fetches the current cohort snapshot.
func (c *Client) InstructorSummary(ctx context.Context) (*InstructorSummary, error) {
	url := c.baseURL + PathInstructorSummary

	var wire instructorWire
	if err := c.get(ctx, url, &wire); err != nil {
		return nil, err
	}

	if wire.Module == nil || wire.AvgFocus == nil || wire.AvgStress == nil ||
		wire.AvgEngagement == nil || wire.StudentsHighStress == nil || wire.StudentsTotal == nil {
		return nil, &DecodeError{URL: url, Err: fmt.Errorf("missing fields in instructor summary")}
	}

	return &InstructorSummary{
		Module:             *wire.Module,
		AvgFocus:           *wire.AvgFocus,
		AvgStress:          *wire.AvgStress,
		AvgEngagement:      *wire.AvgEngagement,
		StudentsHighStress: *wire.StudentsHighStress,
		StudentsTotal:      *wire.StudentsTotal,
	}, nil
}

// Health fetches the backend health endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	url := c.baseURL + PathHealth

	var h Health
	if err := c.get(ctx, url, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// get performs a single GET and decodes the JSON body into out.
// Response caching is explicitly disabled so every call reflects
// current server state.
func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed url=%s err=%v", url, err)
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &HTTPError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			URL:        url,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}
