package close_workflow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationClient/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationClient/internal/service/workflows"
)

const msgNotFound = "workflow не найден"

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

// Handle DELETE /api/v1/workflows/{workflowId}
// Закрывает workflow: отложенные сбросы отменяются, поздние ответы отбрасываются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workflowID := mux.Vars(r)["workflowId"]

	if err := h.service.Close(workflowID); err != nil {
		if errors.Is(err, workflows.ErrWorkflowNotFound) {
			h.logger.Warn("DELETE /workflows/{id} - Workflow not found: workflow_id=%s", workflowID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /workflows/{id} - Failed to close workflow: workflow_id=%s, error=%v", workflowID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /workflows/{id} - Workflow closed: workflow_id=%s", workflowID)
	handlers.RespondNoContent(w)
}
