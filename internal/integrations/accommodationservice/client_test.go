package accommodationservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) ObserveIntegrationRequest(string, string, string, time.Duration) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, time.Second, nopLogger{}, nopMetrics{})
}

func TestClient_GetAccommodation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accommodations/acc-1", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"_id": "acc-1",
			"host_id": "h-1",
			"accommodation_name": "Sea view",
			"accommodation_location": "Budva",
			"accommodation_min_guests": 1,
			"accommodation_max_guests": 4,
			"accommodation_amenities": {"TV": true, "WiFi": false, "Pool": true}
		}`))
	})

	acc, err := client.GetAccommodation(context.Background(), "tkn", "acc-1")
	require.NoError(t, err)

	assert.Equal(t, "acc-1", acc.ID)
	assert.Equal(t, "Sea view", acc.Name)
	assert.Equal(t, 4, acc.MaxGuests)
	assert.Equal(t, map[string]bool{"TV": true, "WiFi": false, "Pool": true}, acc.Amenities)
}

func TestClient_GetAccommodation_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrAccommodationNotFound},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrUnavailable},
		{name: "unexpected status", status: http.StatusForbidden, wantErr: ErrInvalidResponse},
		{name: "malformed body", status: http.StatusOK, body: `{"_id":`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetAccommodation(context.Background(), "", "acc-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetImages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accommodations/images/acc-1", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"data": "aGVsbG8="},
			{"data": [137, 80, 78, 71]},
			{"data": "not base64!"}
		]`))
	})

	images, err := client.GetImages(context.Background(), "", "acc-1")
	require.NoError(t, err)
	require.Len(t, images, 3)

	assert.Equal(t, []byte("hello"), []byte(images[0].Data))
	assert.Equal(t, []byte{137, 80, 78, 71}, []byte(images[1].Data))
	assert.Equal(t, []byte("not base64!"), []byte(images[2].Data))
}

func TestImageData_RejectsOutOfRangeBytes(t *testing.T) {
	var d ImageData
	assert.Error(t, d.UnmarshalJSON([]byte(`[1, 300]`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`{"x":1}`)))
}
