package domain

// Accommodation detail view of a listed property
type Accommodation struct {
	ID          string
	HostID      string
	Name        string
	Location    string
	Description string
	MinGuests   int
	MaxGuests   int
	Amenities   AmenityMap
	Images      []string // data URL
}

// AmenityMap key -> present table (TV, WiFi, AC, ...)
type AmenityMap map[string]bool

// Has returns false for unknown keys
func (m AmenityMap) Has(key string) bool {
	return m[key]
}
