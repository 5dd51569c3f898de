package get_service_endpoints

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationClient/internal/api/handlers"
)

// ServiceEndpointsResponse HTTP response model
type ServiceEndpointsResponse struct {
	Services map[string]string `json:"services"`
}

type Handler struct {
	provider EndpointsProvider
}

func NewHandler(provider EndpointsProvider) *Handler {
	return &Handler{provider: provider}
}

// Handle GET /api/v1/config/endpoints
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ServiceEndpointsResponse{
		Services: h.provider.Endpoints(),
	})
}
