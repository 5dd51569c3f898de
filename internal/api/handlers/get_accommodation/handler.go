package get_accommodation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationClient/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationClient/internal/api/middleware"
	getAccommodation "github.com/m04kA/SMC-ReservationClient/internal/usecase/get_accommodation"
)

const (
	msgInvalidAccommodationID = "некорректный ID размещения"
	msgNotFound               = "размещение не найдено"
)

type Handler struct {
	useCase GetAccommodationUseCase
	logger  Logger
}

func NewHandler(useCase GetAccommodationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/accommodations/{accommodationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	accommodationID := mux.Vars(r)["accommodationId"]
	token, _ := middleware.GetToken(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getAccommodation.Request{
		AccommodationID: accommodationID,
		Token:           token,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAccommodation.ErrInvalidInput):
			h.logger.Warn("GET /accommodations/{id} - Invalid accommodation ID: %q", accommodationID)
			handlers.RespondBadRequest(w, msgInvalidAccommodationID)
		case errors.Is(err, getAccommodation.ErrAccommodationNotFound):
			h.logger.Warn("GET /accommodations/{id} - Accommodation not found: accommodation_id=%s", accommodationID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /accommodations/{id} - Failed to get accommodation: accommodation_id=%s, error=%v", accommodationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
