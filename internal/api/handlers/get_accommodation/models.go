package get_accommodation

import getAccommodation "github.com/m04kA/SMC-ReservationClient/internal/usecase/get_accommodation"

// AccommodationResponse HTTP response model
type AccommodationResponse struct {
	ID           string          `json:"id"`
	HostID       string          `json:"host_id,omitempty"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Description  string          `json:"description,omitempty"`
	MinGuests    int             `json:"min_guests"`
	MaxGuests    int             `json:"max_guests"`
	Amenities    map[string]bool `json:"amenities"`
	Images       []string        `json:"images"`
	ImagesLoaded bool            `json:"images_loaded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAccommodation.Response) *AccommodationResponse {
	acc := resp.Accommodation

	images := acc.Images
	if images == nil {
		images = []string{}
	}

	return &AccommodationResponse{
		ID:           acc.ID,
		HostID:       acc.HostID,
		Name:         acc.Name,
		Location:     acc.Location,
		Description:  acc.Description,
		MinGuests:    acc.MinGuests,
		MaxGuests:    acc.MaxGuests,
		Amenities:    acc.Amenities,
		Images:       images,
		ImagesLoaded: resp.ImagesLoaded,
	}
}
