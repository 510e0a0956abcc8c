package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/booking-portal/internal/model"
	"github.com/jwalitptl/booking-portal/pkg/metrics"
)

// DefaultBaseURL is used when no backend URL is configured.
const DefaultBaseURL = "http://localhost:8000/api"

// Config configures the booking backend client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zerolog.Logger
	Metrics    *metrics.Metrics
}

// Client is a typed wrapper over the booking backend's REST API. Each
// operation performs exactly one HTTP call: no retries, no caching, no
// coalescing of identical in-flight requests, no auth. Timeouts are whatever
// the injected http.Client enforces.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// AvailabilityResult is the GET /availability response.
type AvailabilityResult struct {
	Provider model.Provider   `json:"provider"`
	Slots    []model.TimeSlot `json:"slots"`
}

// New creates a booking client. BaseURL falls back to DefaultBaseURL and
// HTTPClient to http.DefaultClient.
func New(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
		metrics: cfg.Metrics,
	}
}

// Providers lists all bookable providers.
func (c *Client) Providers(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	err := c.get(ctx, "providers", "/providers", nil, "failed to fetch providers", &providers)
	if err != nil {
		return nil, err
	}
	return providers, nil
}

// Availability fetches a provider's open slots between startDate and endDate.
// Both bounds are caller-supplied YYYY-MM-DD strings; the client does no date
// validation.
func (c *Client) Availability(ctx context.Context, providerID, startDate, endDate string) (*AvailabilityResult, error) {
	query := url.Values{}
	query.Set("provider_id", providerID)
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	var result AvailabilityResult
	err := c.get(ctx, "availability", "/availability", query, "failed to fetch availability", &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateAppointment books a slot and returns the created appointment.
func (c *Client) CreateAppointment(ctx context.Context, req *model.BookingRequest) (*model.Appointment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var appt model.Appointment
	err = c.do(ctx, "create_appointment", http.MethodPost, "/appointments", nil, body, "failed to create appointment", &appt)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// ProviderAppointments lists a provider's appointments in the date range.
// The endpoint's response shape is not pinned down yet, so the body passes
// through as raw JSON for the caller to interpret.
func (c *Client) ProviderAppointments(ctx context.Context, providerID, startDate, endDate string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("start_date", startDate)
	query.Set("end_date", endDate)

	var raw json.RawMessage
	path := "/providers/" + url.PathEscape(providerID) + "/appointments"
	err := c.get(ctx, "provider_appointments", path, query, "failed to fetch appointments", &raw)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, fallback string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, fallback, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body []byte, fallback string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("operation", op).Str("url", u).Msg("booking backend request")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(op, "transport_error", start)
		c.logger.Error().Err(err).Str("operation", op).Msg("booking backend request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.observe(op, "error", start)
		reqErr := newRequestError(op, resp, fallback)
		c.logger.Warn().
			Str("operation", op).
			Int("status", resp.StatusCode).
			Str("message", reqErr.Message).
			Msg("booking backend rejected request")
		return reqErr
	}
	c.observe(op, "success", start)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error().Err(err).Str("operation", op).Msg("booking backend response decode failed")
		return err
	}
	return nil
}

func (c *Client) observe(op, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.UpstreamRequests.WithLabelValues(op, status).Inc()
	c.metrics.UpstreamLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// newRequestError extracts the backend's "detail" message when the error
// body parses as JSON and carries one, else keeps the fallback text.
func newRequestError(op string, resp *http.Response, fallback string) *RequestError {
	message := fallback
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		message = payload.Detail
	}
	return &RequestError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
