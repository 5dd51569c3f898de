package submit_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationClient/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationClient/internal/domain"
	"github.com/m04kA/SMC-ReservationClient/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ReservationClient/internal/service/workflows"
	"github.com/m04kA/SMC-ReservationClient/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	calls []domain.ReservationRequest
	err   error
}

func (c *fakeClient) CreateReservation(_ context.Context, _ string, body domain.ReservationRequest) (*reservationservice.Confirmation, error) {
	c.calls = append(c.calls, body)
	if c.err != nil {
		return nil, c.err
	}
	return &reservationservice.Confirmation{ID: "r-1"}, nil
}

func (c *fakeClient) CheckAvailability(context.Context, string, string, domain.AvailabilityQuery) (*reservationservice.AvailabilityResult, error) {
	return &reservationservice.AvailabilityResult{}, nil
}

func setup(t *testing.T, client *fakeClient) (*mux.Router, string) {
	t.Helper()

	svc := workflows.NewService(client, clock.NewMock(), workflows.Config{}, nopLogger{}, metrics.Nop{})
	t.Cleanup(svc.CloseAll)

	wf, err := svc.Open("acc-1", "tkn")
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/workflows/{workflowId}/reservation", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)
	return r, wf.ID()
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) handlers.WorkflowResponse {
	t.Helper()
	var resp handlers.WorkflowResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandler_Success(t *testing.T) {
	client := &fakeClient{}
	r, id := setup(t, client)

	rec := post(r, "/workflows/"+id+"/reservation",
		`{"check_in_date":"2025-10-20","check_out_date":"2025-10-22","check_in_time":12,"number_of_guests":2}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "succeeded", resp.Reservation.Phase)
	assert.Equal(t, "Reserved successfully!", resp.Reservation.Message)
	assert.Equal(t, "idle", resp.Availability.Phase)

	require.Len(t, client.calls, 1)
	assert.Equal(t, domain.Timestamp("2025-10-22T15:00:00Z"), client.calls[0].CheckOutDate)
	assert.Equal(t, 2, client.calls[0].GuestCount)
}

func TestHandler_ValidationFailure(t *testing.T) {
	client := &fakeClient{}
	r, id := setup(t, client)

	rec := post(r, "/workflows/"+id+"/reservation", `{"check_in_time":30}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "invalid", resp.Reservation.Phase)
	assert.ElementsMatch(t, []string{"check_in_time", "number_of_guests"}, resp.Reservation.Violations)
	assert.Empty(t, client.calls)
}

func TestHandler_RemoteFailure(t *testing.T) {
	client := &fakeClient{err: &reservationservice.RemoteError{StatusCode: http.StatusBadRequest, Message: "Dates unavailable"}}
	r, id := setup(t, client)

	rec := post(r, "/workflows/"+id+"/reservation", `{"check_in_time":12,"number_of_guests":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "failed", resp.Reservation.Phase)
	assert.Equal(t, "Dates unavailable", resp.Reservation.Message)
}

func TestHandler_BadRequests(t *testing.T) {
	r, id := setup(t, &fakeClient{})

	rec := post(r, "/workflows/"+id+"/reservation", `{"check_in_time":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(r, "/workflows/"+id+"/reservation", `{"unknown":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(r, "/workflows/missing/reservation", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, msgNotFound, body.Error)
}
