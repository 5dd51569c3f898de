package reservationservice

// ErrorResponse модель ошибки от ReservationService
type ErrorResponse struct {
	Error string `json:"error"`
}

// Confirmation подтверждение создания бронирования.
// Формат ответа сервиса не фиксирован, поэтому сохраняется целиком в Raw.
type Confirmation struct {
	ID  string
	Raw map[string]interface{}
}

// AvailabilityResult ответ на проверку доступности дат
type AvailabilityResult struct {
	Message string
	Raw     map[string]interface{}
}
