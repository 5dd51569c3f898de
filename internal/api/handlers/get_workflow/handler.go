package get_workflow

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

// Handle GET /api/v1/workflows/{workflowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workflowID := mux.Vars(r)["workflowId"]

	wf, err := h.service.Get(workflowID)
	if err != nil {
		if errors.Is(err, workflows.ErrWorkflowNotFound) {
			h.logger.Warn("GET /workflows/{id} - Workflow not found: workflow_id=%s", workflowID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /workflows/{id} - Failed to get workflow: workflow_id=%s, error=%v", workflowID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSnapshot(wf.Snapshot()))
}
