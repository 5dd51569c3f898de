package open_workflow

import "github.com/m04kA/SMC-ReservationClient/internal/usecase/reservation_workflow"

type WorkflowService interface {
	Open(accommodationID, token string) (*reservation_workflow.Workflow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
