package submit_reservation

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

// Handle POST /api/v1/workflows/{workflowId}/reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workflowID := mux.Vars(r)["workflowId"]

	var req SubmitReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workflows/{id}/reservation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wf, err := h.service.Get(workflowID)
	if err != nil {
		if errors.Is(err, workflows.ErrWorkflowNotFound) {
			h.logger.Warn("POST /workflows/{id}/reservation - Workflow not found: workflow_id=%s", workflowID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("POST /workflows/{id}/reservation - Failed to get workflow: workflow_id=%s, error=%v", workflowID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Состояние workflow живет дольше запроса: обрыв соединения не должен переводить его в failed
	ctx := context.WithoutCancel(r.Context())

	state, err := wf.Submit(ctx, req.ToDomainForm())
	status := handlers.FlowStatus(err, http.StatusCreated)
	if status == http.StatusInternalServerError {
		h.logger.Error("POST /workflows/{id}/reservation - Failed to submit: workflow_id=%s, error=%v", workflowID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /workflows/{id}/reservation - workflow_id=%s, phase=%s, status=%d", workflowID, state.Phase, status)
	handlers.RespondJSON(w, status, handlers.FromSnapshot(wf.Snapshot()))
}
