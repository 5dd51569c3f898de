package reservationservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) ObserveIntegrationRequest(_, _, outcome string, _ time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	metrics := &recordingMetrics{}
	return NewClient(srv.URL+"/api/", time.Second, nopLogger{}, metrics), metrics
}

func TestClient_CreateReservation(t *testing.T) {
	var got domain.ReservationRequest
	client, metrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservations/create", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"r-42","status":"pending"}`))
	})

	req := domain.ReservationRequest{
		AccommodationID: "acc-1",
		CheckInDate:     "2025-10-15T00:00:00Z",
		CheckOutDate:    "2025-10-17T15:00:00Z",
		GuestCount:      2,
	}

	conf, err := client.CreateReservation(context.Background(), "secret", req)
	require.NoError(t, err)

	assert.Equal(t, "r-42", conf.ID)
	assert.Equal(t, "pending", conf.Raw["status"])
	assert.Equal(t, req, got)
	assert.Equal(t, []string{"ok"}, metrics.outcomes)
}

func TestClient_CreateReservation_RemoteErrorVerbatim(t *testing.T) {
	client, metrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Dates unavailable"}`))
	})

	_, err := client.CreateReservation(context.Background(), "", domain.ReservationRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)

	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusBadRequest, remote.StatusCode)
	assert.Equal(t, "Dates unavailable", remote.Message)
	assert.Equal(t, []string{"rejected"}, metrics.outcomes)
}

func TestClient_CheckAvailability(t *testing.T) {
	var got domain.AvailabilityQuery
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations/availability/acc 7", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":"Dates are available."}`))
	})

	q := domain.AvailabilityQuery{CheckInDate: "2025-10-15T00:00:00Z", CheckOutDate: "2025-10-16T15:00:00Z"}
	res, err := client.CheckAvailability(context.Background(), "", "acc 7", q)
	require.NoError(t, err)

	assert.Equal(t, "Dates are available.", res.Message)
	assert.Equal(t, q, got)
}

func TestClient_NonObjectSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`true`))
	})

	res, err := client.CheckAvailability(context.Background(), "", "acc-1", domain.AvailabilityQuery{})
	require.NoError(t, err)
	assert.Equal(t, true, res.Raw["result"])
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "plain text error body",
			status:  http.StatusConflict,
			body:    "already booked",
			wantErr: ErrRejected,
			wantMsg: "already booked",
		},
		{
			name:    "json without error field",
			status:  http.StatusInternalServerError,
			body:    `{"message":"boom"}`,
			wantErr: ErrRejected,
			wantMsg: "Internal Server Error",
		},
		{
			name:    "empty body",
			status:  http.StatusNotFound,
			wantErr: ErrRejected,
			wantMsg: "Not Found",
		},
		{
			name:    "malformed success body",
			status:  http.StatusOK,
			body:    `{"id":`,
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.CreateReservation(context.Background(), "", domain.ReservationRequest{})
			require.ErrorIs(t, err, tt.wantErr)

			if tt.wantMsg != "" {
				var remote *RemoteError
				require.True(t, errors.As(err, &remote))
				assert.Equal(t, tt.wantMsg, remote.Message)
			}
		})
	}
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	metrics := &recordingMetrics{}
	client := NewClient(srv.URL, 100*time.Millisecond, nopLogger{}, metrics)

	_, err := client.CreateReservation(context.Background(), "", domain.ReservationRequest{})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, []string{"unavailable"}, metrics.outcomes)
}
