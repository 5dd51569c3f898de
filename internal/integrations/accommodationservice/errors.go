package accommodationservice

import "errors"

var (
	// ErrAccommodationNotFound возвращается, когда размещение не найдено
	ErrAccommodationNotFound = errors.New("accommodationservice: accommodation not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("accommodationservice client: internal error")

	// ErrUnavailable возвращается, когда сервис недоступен или ответил 5xx
	ErrUnavailable = errors.New("accommodationservice: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("accommodationservice client: invalid response")
)
