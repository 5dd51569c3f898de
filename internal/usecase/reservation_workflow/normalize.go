package reservation_workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

// Форматы ввода с явным временем суток
var timedLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Normalize приводит дату из формы к виду "yyyy-MM-ddTHH:mm:ssZ".
//
// Явно указанное время сохраняется. Без времени заезд получает 00:00:00,
// выезд получает checkOutTime. Пустая дата заменяется текущей датой now в UTC.
// Значения со смещением зоны переводятся в UTC, остальные считаются уже заданными в UTC.
func Normalize(date string, isCheckOut bool, now time.Time, checkOutTime string) (domain.Timestamp, error) {
	date = strings.TrimSpace(date)

	defaultTime := domain.DefaultCheckInTime
	if isCheckOut {
		defaultTime = checkOutTime
	}

	if date == "" {
		return stamp(now.UTC().Format(domain.DateFormat), defaultTime), nil
	}

	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return domain.Timestamp(t.UTC().Format(domain.TimestampLayout) + domain.UTCMarker), nil
	}

	for _, layout := range timedLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return domain.Timestamp(t.Format(domain.TimestampLayout) + domain.UTCMarker), nil
		}
	}

	t, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	return stamp(t.Format(domain.DateFormat), defaultTime), nil
}

func stamp(day, clock string) domain.Timestamp {
	return domain.Timestamp(day + "T" + clock + domain.UTCMarker)
}
