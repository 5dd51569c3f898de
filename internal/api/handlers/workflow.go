package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
	"github.com/m04kA/SMC-ReservationClient/internal/integrations/reservationservice"
	"github.com/m04kA/SMC-ReservationClient/internal/usecase/reservation_workflow"
)

// FlowStateResponse состояние одного потока workflow
type FlowStateResponse struct {
	Phase      string   `json:"phase"`
	Message    string   `json:"message,omitempty"`
	Violations []string `json:"violations,omitempty"`
	Busy       bool     `json:"busy"`
	Feedback   bool     `json:"feedback"` // сообщение об успехе или ошибке до автосброса
	UpdatedAt  string   `json:"updated_at"`
}

// WorkflowResponse состояние workflow бронирования
type WorkflowResponse struct {
	ID              string            `json:"id"`
	AccommodationID string            `json:"accommodation_id"`
	Reservation     FlowStateResponse `json:"reservation"`
	Availability    FlowStateResponse `json:"availability"`
	Closed          bool              `json:"closed"`
}

// FromFlowState конвертирует состояние потока в HTTP модель
func FromFlowState(s domain.FlowState) FlowStateResponse {
	var violations []string
	for _, v := range s.Violations {
		violations = append(violations, string(v))
	}

	return FlowStateResponse{
		Phase:      string(s.Phase),
		Message:    s.Message,
		Violations: violations,
		Busy:       s.IsBusy(),
		Feedback:   s.HasFeedback(),
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FromSnapshot конвертирует снимок workflow в HTTP модель
func FromSnapshot(s domain.WorkflowSnapshot) *WorkflowResponse {
	return &WorkflowResponse{
		ID:              s.ID,
		AccommodationID: s.AccommodationID,
		Reservation:     FromFlowState(s.Reservation),
		Availability:    FromFlowState(s.Availability),
		Closed:          s.Closed,
	}
}

// FlowStatus HTTP статус для результата действия workflow.
// Тело ответа в любом случае содержит снимок workflow.
func FlowStatus(err error, success int) int {
	var (
		verr   *reservation_workflow.ValidationError
		remote *reservationservice.RemoteError
	)

	switch {
	case err == nil:
		return success
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, reservation_workflow.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, reservation_workflow.ErrClosed):
		return http.StatusGone
	case errors.As(err, &remote) && remote.StatusCode >= 400 && remote.StatusCode < 500:
		return remote.StatusCode
	case errors.Is(err, reservation_workflow.ErrRemote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
