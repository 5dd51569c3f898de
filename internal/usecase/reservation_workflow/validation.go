package reservation_workflow

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

// formRules правила проверки формы бронирования
type formRules struct {
	CheckInTime *int `validate:"required,min=1,max=24"`
	GuestCount  *int `validate:"required,min=1"`
}

var formValidator = validator.New()

// validate проверяет час заезда и количество гостей.
// Обе проверки выполняются независимо, в ошибке перечислены все нарушения.
func validate(checkInTime, guestCount *int) error {
	err := formValidator.Struct(formRules{
		CheckInTime: checkInTime,
		GuestCount:  guestCount,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "CheckInTime":
			verr.add(domain.ViolationCheckInTime, ErrCheckInTimeInvalid)
		case "GuestCount":
			verr.add(domain.ViolationGuestCount, ErrGuestCountInvalid)
		}
	}

	return verr
}

// violationMessage первое сообщение для показа пользователю
func violationMessage(violations []domain.Violation) string {
	if len(violations) == 0 {
		return ""
	}

	switch violations[0] {
	case domain.ViolationCheckInTime:
		return MessageCheckInTime
	case domain.ViolationGuestCount:
		return MessageGuestCount
	default:
		return MessageInvalidDate
	}
}
