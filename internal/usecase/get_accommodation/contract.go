package get_accommodation

import (
	"context"

	"github.com/m04kA/SMC-ReservationClient/internal/integrations/accommodationservice"
)

// AccommodationServiceClient интерфейс клиента для AccommodationService
type AccommodationServiceClient interface {
	GetAccommodation(ctx context.Context, token, accommodationID string) (*accommodationservice.AccommodationResponse, error)
	GetImages(ctx context.Context, token, accommodationID string) ([]accommodationservice.Image, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
