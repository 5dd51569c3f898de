package domain

import "time"

// Form validation constants
const (
	MinCheckInHour = 1
	MaxCheckInHour = 24
	MinGuestCount  = 1
)

// Workflow defaults
const (
	DefaultFeedbackWindow = 5 * time.Second
	DefaultCheckOutTime   = "15:00:00"
	DefaultCheckInTime    = "00:00:00"
)

// Time format constants
const (
	DateFormat      = "2006-01-02"          // YYYY-MM-DD
	ClockFormat     = "15:04:05"            // HH:MM:SS
	TimestampLayout = "2006-01-02T15:04:05" // без суффикса зоны
	UTCMarker       = "Z"
)

// Well-known amenity keys of an accommodation listing
const (
	AmenityTV   = "TV"
	AmenityWiFi = "WiFi"
	AmenityAC   = "AC"
)

// KnownAmenities список удобств, которые всегда присутствуют в карте удобств
var KnownAmenities = []string{
	AmenityTV,
	AmenityWiFi,
	AmenityAC,
}
