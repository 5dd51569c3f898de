package get_accommodation

import "errors"

var (
	// ErrAccommodationNotFound возвращается, когда размещение не найдено
	ErrAccommodationNotFound = errors.New("get_accommodation: accommodation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_accommodation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_accommodation: internal error")
)
