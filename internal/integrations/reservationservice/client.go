package reservationservice

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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

const (
	metricsTarget = "reservation"
	maxRead       = 128 * 1024

	outcomeOK          = "ok"
	outcomeRejected    = "rejected"
	outcomeUnavailable = "unavailable"
	outcomeInvalid     = "invalid_response"
)

// Client клиент для работы с ReservationService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
	tracer     trace.Tracer
}

// NewClient создает новый экземпляр клиента ReservationService
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
		tracer:  otel.Tracer("github.com/m04kA/SMC-ReservationClient/internal/integrations/reservationservice"),
	}
}

// CreateReservation отправляет заявку на бронирование
// POST {reservation}/reservations/create
func (c *Client) CreateReservation(ctx context.Context, token string, body domain.ReservationRequest) (*Confirmation, error) {
	endpoint := c.baseURL + "/reservations/create"

	raw, err := c.post(ctx, "create", endpoint, token, body)
	if err != nil {
		return nil, err
	}

	return &Confirmation{
		ID:  pickString(raw, "id", "_id", "reservation_id"),
		Raw: raw,
	}, nil
}

// CheckAvailability проверяет, свободны ли даты для размещения
// POST {reservation}/reservations/availability/{accommodationId}
func (c *Client) CheckAvailability(ctx context.Context, token, accommodationID string, body domain.AvailabilityQuery) (*AvailabilityResult, error) {
	endpoint := fmt.Sprintf("%s/reservations/availability/%s", c.baseURL, url.PathEscape(accommodationID))

	raw, err := c.post(ctx, "availability", endpoint, token, body)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Message: pickString(raw, "message"),
		Raw:     raw,
	}, nil
}

func (c *Client) post(ctx context.Context, operation, endpoint, token string, body interface{}) (raw map[string]interface{}, err error) {
	ctx, span := c.tracer.Start(ctx, "ReservationService."+operation,
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

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ReservationService %s: request failed: %v", operation, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxRead))
		resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRead))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remote := &RemoteError{
			StatusCode: resp.StatusCode,
			Message:    remoteMessage(resp.StatusCode, data),
		}
		c.log.Warn("ReservationService %s: rejected with status=%d, message=%q", operation, resp.StatusCode, remote.Message)
		return nil, remote
	}

	raw = make(map[string]interface{})
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}

	// Сервис может вернуть не объект (например, true или строку) - сохраняем как есть
	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if obj, ok := decoded.(map[string]interface{}); ok {
		return obj, nil
	}
	raw["result"] = decoded

	return raw, nil
}

// remoteMessage достает поле error из тела ошибки; при его отсутствии - текст статуса
func remoteMessage(status int, data []byte) string {
	var body ErrorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}

	text := strings.TrimSpace(string(data))
	if text != "" && !strings.HasPrefix(text, "{") && len(text) < 256 {
		return text
	}

	return http.StatusText(status)
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrRejected):
		return outcomeRejected
	case errors.Is(err, ErrInvalidResponse):
		return outcomeInvalid
	default:
		return outcomeUnavailable
	}
}

func pickString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			return v
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
