package reservation_workflow

import (
	"time"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
	"github.com/m04kA/SMC-ReservationClient/pkg/timerscope"
)

const (
	flowReservation  = "reservation"
	flowAvailability = "availability"
)

// Сообщения, которые показываются пользователю
const (
	MessageReserved           = "Reserved successfully!"
	MessageDatesAvailable     = "Dates are available."
	MessageCheckInTime        = "Please enter your check-in time!"
	MessageGuestCount         = "Please enter the number of guests!"
	MessageInvalidDate        = "Please enter a valid date!"
	MessageServiceUnavailable = "Reservation service is unavailable, please try again later."
)

// Config настройки workflow
type Config struct {
	FeedbackWindow time.Duration // сколько показывается результат перед сбросом в idle
	CheckOutTime   string        // время выезда по умолчанию, "HH:MM:SS"
}

func (c Config) withDefaults() Config {
	if c.FeedbackWindow <= 0 {
		c.FeedbackWindow = domain.DefaultFeedbackWindow
	}
	if c.CheckOutTime == "" {
		c.CheckOutTime = domain.DefaultCheckOutTime
	}
	return c
}

// flow состояние одного потока (бронирование или проверка доступности)
type flow struct {
	name       string
	state      domain.FlowState
	generation uint64
	reset      *timerscope.Task
}
