package reservation_workflow

import (
	"context"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
	"github.com/m04kA/SMC-ReservationClient/internal/integrations/reservationservice"
)

// ReservationServiceClient интерфейс клиента для ReservationService
type ReservationServiceClient interface {
	CreateReservation(ctx context.Context, token string, body domain.ReservationRequest) (*reservationservice.Confirmation, error)
	CheckAvailability(ctx context.Context, token, accommodationID string, body domain.AvailabilityQuery) (*reservationservice.AvailabilityResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета переходов состояний
type Metrics interface {
	WorkflowTransition(flow, phase string)
}
