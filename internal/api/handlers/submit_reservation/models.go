package submit_reservation

import "github.com/m04kA/SMC-ReservationClient/internal/domain"

// SubmitReservationRequest HTTP request model
type SubmitReservationRequest struct {
	CheckInDate  string `json:"check_in_date"`  // "2025-10-15" или "2025-10-15T10:30"
	CheckOutDate string `json:"check_out_date"` // пусто: сегодня, 15:00
	CheckInTime  *int   `json:"check_in_time"`  // 1..24
	GuestCount   *int   `json:"number_of_guests"`
}

// ToDomainForm конвертирует HTTP запрос в форму бронирования
func (r *SubmitReservationRequest) ToDomainForm() domain.ReservationForm {
	return domain.ReservationForm{
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		CheckInTime:  r.CheckInTime,
		GuestCount:   r.GuestCount,
	}
}
