package get_accommodation

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

// buildAmenityMap переносит удобства как есть и дополняет известные ключи значением false
func buildAmenityMap(raw map[string]bool) domain.AmenityMap {
	amenities := make(domain.AmenityMap, len(raw)+len(domain.KnownAmenities))
	for _, key := range domain.KnownAmenities {
		amenities[key] = false
	}
	for key, present := range raw {
		amenities[key] = present
	}
	return amenities
}

// dataURL кодирует изображение в data URL, тип определяется по содержимому
func dataURL(data []byte) string {
	mime := mimetype.Detect(data).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
