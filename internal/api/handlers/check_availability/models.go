package check_availability

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}
