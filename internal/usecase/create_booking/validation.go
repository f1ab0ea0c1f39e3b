package create_booking

import (
	"fmt"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// validateRequest проверяет шлюзы сабмита: обязательные поля заполнены,
// инлайн-правила формы выполнены, условия приняты, слот выбран и известен.
// Порядок проверок соответствует порядку сообщений пользователю.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if !domain.IsValidSlotID(req.SlotID) {
		return ErrUnknownSlot
	}

	if !domain.RequiredFieldsPresent(req.Form) {
		return ErrMissingFields
	}

	formErrors := domain.ValidateForm(req.Form)
	if _, ok := formErrors["email"]; ok {
		return ErrInvalidEmail
	}
	if _, ok := formErrors["contactNumber"]; ok {
		return ErrInvalidContactNumber
	}

	if !req.TermsAccepted {
		return ErrTermsNotAccepted
	}

	return nil
}

// validateDate проверяет, что дата доступна для бронирования:
// не в прошлом (сегодня допустимо, отсечки по времени дня нет)
// и не воскресенье — единственный закрытый день
func validateDate(date, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return ErrDateInPast
	}
	if date.Weekday() == time.Sunday {
		return ErrClosedDay
	}
	return nil
}
