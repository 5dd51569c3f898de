package check_availability

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationClient/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationClient/internal/service/workflows"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "workflow не найден"
)

type Handler struct {
	service WorkflowService
	logger  Logger
}

func NewHandler(service WorkflowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/workflows/{workflowId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workflowID := mux.Vars(r)["workflowId"]

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workflows/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wf, err := h.service.Get(workflowID)
	if err != nil {
		if errors.Is(err, workflows.ErrWorkflowNotFound) {
			h.logger.Warn("POST /workflows/{id}/availability - Workflow not found: workflow_id=%s", workflowID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("POST /workflows/{id}/availability - Failed to get workflow: workflow_id=%s, error=%v", workflowID, err)
		handlers.RespondInternalError(w)
		return
	}

	state, err := wf.CheckAvailability(context.WithoutCancel(r.Context()), req.CheckInDate, req.CheckOutDate)
	status := handlers.FlowStatus(err, http.StatusOK)
	if status == http.StatusInternalServerError {
		h.logger.Error("POST /workflows/{id}/availability - Failed to check availability: workflow_id=%s, error=%v", workflowID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /workflows/{id}/availability - workflow_id=%s, phase=%s, status=%d", workflowID, state.Phase, status)
	handlers.RespondJSON(w, status, handlers.FromSnapshot(wf.Snapshot()))
}
