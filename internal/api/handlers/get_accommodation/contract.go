package get_accommodation

import (
	"context"

	getAccommodation "github.com/m04kA/SMC-ReservationClient/internal/usecase/get_accommodation"
)

type GetAccommodationUseCase interface {
	Execute(ctx context.Context, req *getAccommodation.Request) (*getAccommodation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
