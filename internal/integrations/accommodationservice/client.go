package accommodationservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	metricsTarget = "accommodation"
	maxRead       = 16 * 1024 * 1024

	outcomeOK          = "ok"
	outcomeNotFound    = "not_found"
	outcomeUnavailable = "unavailable"
	outcomeInvalid     = "invalid_response"
)

// Client клиент для работы с AccommodationService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
	tracer     trace.Tracer
}

// NewClient создает новый экземпляр клиента AccommodationService
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
		tracer:  otel.Tracer("github.com/m04kA/SMC-ReservationClient/internal/integrations/accommodationservice"),
	}
}

// GetAccommodation получает размещение по ID
// GET {accommodation}/accommodations/{id}
func (c *Client) GetAccommodation(ctx context.Context, token, accommodationID string) (*AccommodationResponse, error) {
	endpoint := fmt.Sprintf("%s/accommodations/%s", c.baseURL, url.PathEscape(accommodationID))

	var acc AccommodationResponse
	if err := c.get(ctx, "get", endpoint, token, &acc); err != nil {
		return nil, err
	}

	return &acc, nil
}

// GetImages получает изображения размещения
// GET {accommodation}/accommodations/images/{id}
func (c *Client) GetImages(ctx context.Context, token, accommodationID string) ([]Image, error) {
	endpoint := fmt.Sprintf("%s/accommodations/images/%s", c.baseURL, url.PathEscape(accommodationID))

	var images []Image
	if err := c.get(ctx, "images", endpoint, token, &images); err != nil {
		return nil, err
	}

	return images, nil
}

func (c *Client) get(ctx context.Context, operation, endpoint, token string, out interface{}) (err error) {
	ctx, span := c.tracer.Start(ctx, "AccommodationService."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", endpoint)),
	)
	started := time.Now()
	defer func() {
		outcome := outcomeFor(err)
		c.metrics.ObserveIntegrationRequest(metricsTarget, operation, outcome, time.Since(started))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("AccommodationService %s: request failed: %v", operation, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrAccommodationNotFound
	case resp.StatusCode >= 500:
		c.log.Warn("AccommodationService %s: status=%d", operation, resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", ErrInvalidResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRead)).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrAccommodationNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrInvalidResponse):
		return outcomeInvalid
	default:
		return outcomeUnavailable
	}
}
