package workflows

import "github.com/m04kA/SMC-ReservationClient/internal/usecase/reservation_workflow"

// ReservationServiceClient интерфейс клиента для ReservationService
type ReservationServiceClient = reservation_workflow.ReservationServiceClient

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс метрик сессий workflow
type Metrics interface {
	reservation_workflow.Metrics
	WorkflowOpened()
	WorkflowClosed()
}
