package reservationservice

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected возвращается, когда ReservationService отклонил запрос (не-2xx ответ)
	ErrRejected = errors.New("reservationservice: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationservice client: internal error")

	// ErrUnavailable возвращается, когда сервис недоступен (сеть, таймаут)
	ErrUnavailable = errors.New("reservationservice: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("reservationservice client: invalid response")
)

// RemoteError ошибка, полученная от ReservationService.
// Message передается пользователю без изменений.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("reservationservice: status %d: %s", e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return ErrRejected
}
