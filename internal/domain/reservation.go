package domain

import "strings"

// Timestamp canonical wall-clock timestamp "yyyy-MM-ddTHH:mm:ssZ"
type Timestamp string

// String returns the raw timestamp
func (t Timestamp) String() string {
	return string(t)
}

// IsNormalized reports whether the timestamp carries date, time and the UTC marker
func (t Timestamp) IsNormalized() bool {
	s := string(t)
	return len(s) == len(TimestampLayout)+len(UTCMarker) &&
		strings.HasSuffix(s, UTCMarker) &&
		s[10] == 'T'
}

// ReservationRequest is built fresh for every submission and never persisted
type ReservationRequest struct {
	AccommodationID string    `json:"accommodation_id"`
	CheckInDate     Timestamp `json:"check_in_date"`
	CheckOutDate    Timestamp `json:"check_out_date"`
	GuestCount      int       `json:"number_of_guests"`
}

// AvailabilityQuery is sent to the availability probe; the accommodation id travels in the URL
type AvailabilityQuery struct {
	CheckInDate  Timestamp `json:"check_in_date"`
	CheckOutDate Timestamp `json:"check_out_date"`
}

// ReservationForm raw user input captured from the reservation form
type ReservationForm struct {
	CheckInDate  string // "2025-10-15" или "2025-10-15T10:30"
	CheckOutDate string
	CheckInTime  *int // час заезда 1..24
	GuestCount   *int
}
