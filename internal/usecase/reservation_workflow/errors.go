package reservation_workflow

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

var (
	// ErrCheckInTimeInvalid час заезда не указан или вне диапазона [1, 24]
	ErrCheckInTimeInvalid = errors.New("reservation_workflow: check-in time is missing or out of range")

	// ErrGuestCountInvalid количество гостей не указано или меньше 1
	ErrGuestCountInvalid = errors.New("reservation_workflow: guest count is missing or less than one")

	// ErrInvalidDate дата не распознана
	ErrInvalidDate = errors.New("reservation_workflow: invalid date")

	// ErrClosed workflow уже закрыт
	ErrClosed = errors.New("reservation_workflow: workflow is closed")

	// ErrSuperseded ответ пришел после того, как его вытеснила более новая операция
	ErrSuperseded = errors.New("reservation_workflow: superseded by a newer action")

	// ErrRemote ReservationService отклонил запрос или недоступен
	ErrRemote = errors.New("reservation_workflow: reservation service error")
)

// ValidationError локальная ошибка формы; сетевой запрос не выполняется
type ValidationError struct {
	Violations []domain.Violation
	errs       []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.errs
}

func (e *ValidationError) add(v domain.Violation, err error) {
	e.Violations = append(e.Violations, v)
	e.errs = append(e.errs, err)
}
