package accommodationservice

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// AccommodationResponse модель ответа от AccommodationService
type AccommodationResponse struct {
	ID          string          `json:"_id"`
	HostID      string          `json:"host_id"`
	Name        string          `json:"accommodation_name"`
	Location    string          `json:"accommodation_location"`
	Description string          `json:"accommodation_description"`
	MinGuests   int             `json:"accommodation_min_guests"`
	MaxGuests   int             `json:"accommodation_max_guests"`
	Amenities   map[string]bool `json:"accommodation_amenities"`
}

// Image изображение размещения
type Image struct {
	Data ImageData `json:"data"`
}

// ImageData байты изображения.
// Сервис отдает их либо base64-строкой, либо массивом байт.
type ImageData []byte

// UnmarshalJSON принимает base64-строку, произвольную строку или массив чисел
func (d *ImageData) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if decoded, err := base64.StdEncoding.DecodeString(s); err == nil {
			*d = decoded
			return nil
		}
		*d = []byte(s)
		return nil
	}

	var nums []int
	if err := json.Unmarshal(b, &nums); err != nil {
		return fmt.Errorf("image data: expected string or byte array: %w", err)
	}

	out := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return fmt.Errorf("image data: byte %d out of range: %d", i, n)
		}
		out[i] = byte(n)
	}
	*d = out

	return nil
}
