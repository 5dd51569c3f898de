package open_workflow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationClient/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationClient/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationClient/internal/service/workflows"
)

const (
	msgInvalidAccommodationID = "некорректный ID размещения"
	msgShuttingDown           = "сервис останавливается, повторите позже"
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

// Handle POST /api/v1/accommodations/{accommodationId}/workflows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	accommodationID := mux.Vars(r)["accommodationId"]
	token, _ := middleware.GetToken(r.Context())

	wf, err := h.service.Open(accommodationID, token)
	if err != nil {
		switch {
		case errors.Is(err, workflows.ErrInvalidInput):
			h.logger.Warn("POST /accommodations/{id}/workflows - Invalid accommodation ID: %q", accommodationID)
			handlers.RespondBadRequest(w, msgInvalidAccommodationID)
		case errors.Is(err, workflows.ErrShuttingDown):
			h.logger.Warn("POST /accommodations/{id}/workflows - Service is shutting down")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgShuttingDown)
		default:
			h.logger.Error("POST /accommodations/{id}/workflows - Failed to open workflow: accommodation_id=%s, error=%v", accommodationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /accommodations/{id}/workflows - Workflow opened: workflow_id=%s, accommodation_id=%s", wf.ID(), accommodationID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSnapshot(wf.Snapshot()))
}
