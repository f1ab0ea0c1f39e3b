package create_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля
	// (имя, email, контактный номер, колледж)
	ErrMissingFields = errors.New("create_booking: required fields are missing")

	// ErrInvalidEmail возвращается, когда email не принадлежит домену организации
	ErrInvalidEmail = errors.New("create_booking: email must belong to the organization domain")

	// ErrInvalidContactNumber возвращается при некорректном контактном номере
	ErrInvalidContactNumber = errors.New("create_booking: contact number must be 10 digits")

	// ErrTermsNotAccepted возвращается, когда не приняты условия использования
	ErrTermsNotAccepted = errors.New("create_booking: terms must be accepted")

	// ErrUnknownSlot возвращается при неизвестном идентификаторе слота
	ErrUnknownSlot = errors.New("create_booking: unknown time slot")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrClosedDay возвращается при попытке забронировать воскресенье
	ErrClosedDay = errors.New("create_booking: bookings are not available on sundays")

	// ErrSlotAlreadyBooked возвращается, когда пара (дата, слот) уже занята.
	// Штатный исход конкурентного сабмита, а не сбой: пользователю
	// предлагается выбрать другой слот.
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
