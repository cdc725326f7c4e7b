// Package backend talks to the agent backend. Every response is decoded into
// a concrete type and validated here, so nothing untyped leaks inward.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitcoach/internal/bodymetrics"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

const (
	EndpointOnboarding      = "/api/user/onboarding"
	EndpointDashboard       = "/api/dashboard/metrics"
	EndpointProfile         = "/api/profile"
	EndpointProfileSave     = "/api/profile/save"
	EndpointWellnessAnalyze = "/api/wellness/analyze"

	// error bodies are cut to this size
	maxErrorBodyLen = 1024
)

type Client struct {
	baseURL        string
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewClient(baseURL string, timeout time.Duration, metricsManager *metrics.Manager) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		metricsManager: metricsManager,
	}
}

// SaveOnboarding persists the onboarding record remotely. Any 2xx reply is a
// success. A JSON body is only consulted when it carries a status field.
func (c *Client) SaveOnboarding(ctx context.Context, record bodymetrics.OnboardingRecord) error {
	var raw []byte
	if err := c.do(ctx, http.MethodPost, EndpointOnboarding, nil, record, &raw); err != nil {
		return err
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	var resp statusResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Debugf("backend: ignoring non-json %s reply: %s", EndpointOnboarding, err)
		return nil
	}
	if resp.Status != "" && resp.Status != StatusSuccess {
		return c.parseErr(EndpointOnboarding, fmt.Errorf("unexpected status %q", resp.Status))
	}
	return nil
}

func (c *Client) FetchDashboardMetrics(ctx context.Context, userID string) (*DashboardMetrics, error) {
	var m DashboardMetrics
	query := url.Values{"user_id": []string{userID}}
	if err := c.do(ctx, http.MethodGet, EndpointDashboard, query, nil, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, c.parseErr(EndpointDashboard, err)
	}
	return &m, nil
}

// GetProfile returns nil, nil when the backend has no profile for the user.
func (c *Client) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	var resp profileResponse
	query := url.Values{"user_id": []string{userID}}
	if err := c.do(ctx, http.MethodGet, EndpointProfile, query, nil, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case StatusNotFound:
		return nil, nil
	case StatusSuccess:
	default:
		return nil, c.parseErr(EndpointProfile, fmt.Errorf("unexpected status %q", resp.Status))
	}

	if resp.Profile == nil {
		return nil, c.parseErr(EndpointProfile, errors.New("missing profile"))
	}
	if err := resp.Profile.Validate(); err != nil {
		return nil, c.parseErr(EndpointProfile, err)
	}
	return resp.Profile, nil
}

func (c *Client) SaveProfile(ctx context.Context, userID string, profile UserProfile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	body := struct {
		UserID string `json:"user_id"`
		UserProfile
	}{
		UserID:      userID,
		UserProfile: profile,
	}

	var resp statusResponse
	if err := c.do(ctx, http.MethodPost, EndpointProfileSave, nil, body, &resp); err != nil {
		return err
	}
	if resp.Status != StatusSuccess {
		return c.parseErr(EndpointProfileSave, fmt.Errorf("unexpected status %q", resp.Status))
	}
	return nil
}

func (c *Client) AnalyzeWellness(ctx context.Context, req WellnessRequest) (*WellnessAnalysis, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wellness request: %w", err)
	}

	var analysis WellnessAnalysis
	if err := c.do(ctx, http.MethodPost, EndpointWellnessAnalyze, nil, req, &analysis); err != nil {
		return nil, err
	}
	if err := analysis.Validate(); err != nil {
		return nil, c.parseErr(EndpointWellnessAnalyze, err)
	}
	return &analysis, nil
}

func (c *Client) do(
	ctx context.Context,
	method, endpoint string,
	query url.Values,
	reqBody, respBody any,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backend.call")
	span.SetAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("method", method),
	)
	defer func() {
		if err != nil {
			c.countError(endpoint)
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reqURL := c.baseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Tracef("backend: %s %s", method, reqURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := string(respBytes)
		if len(text) > maxErrorBodyLen {
			text = text[:maxErrorBodyLen]
		}
		return &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       text,
		}
	}

	// raw replies are handed back undecoded
	if raw, ok := respBody.(*[]byte); ok {
		*raw = respBytes
		return nil
	}
	if err := json.Unmarshal(respBytes, respBody); err != nil {
		return &ParseError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func (c *Client) parseErr(endpoint string, err error) error {
	c.countError(endpoint)
	return &ParseError{Endpoint: endpoint, Err: err}
}

func (c *Client) countError(endpoint string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterBackendErrors.WithLabelValues(endpoint).Inc()
	}
}
