package get_accommodation

import "github.com/m04kA/SMC-ReservationClient/internal/domain"

// Request модель запроса карточки размещения
type Request struct {
	AccommodationID string
	Token           string // токен пользователя, пробрасывается в AccommodationService
}

// Response карточка размещения с картой удобств и изображениями
type Response struct {
	Accommodation domain.Accommodation
	ImagesLoaded  bool // false, если изображения получить не удалось
}
