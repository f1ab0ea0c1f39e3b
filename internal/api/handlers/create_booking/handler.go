package create_booking

import (
	"errors"
	"net/http"

	"github.com/Mohanrajjicate/drone-booking/internal/api/handlers"
	createBooking "github.com/Mohanrajjicate/drone-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Invalid booking date, expected YYYY-MM-DD."
	msgMissingFields      = "Please fill in all required fields."
	msgInvalidEmail       = "Email must end with @jkkn.ac.in"
	msgInvalidContact     = "Must be a 10-digit number."
	msgTermsNotAccepted   = "You must accept the terms and conditions."
	msgUnknownSlot        = "Unknown time slot."
	msgDateInPast         = "This date is in the past and cannot be booked."
	msgClosedDay          = "Bookings are not available on Sundays."
	msgSlotTaken          = "This time slot has just been booked by someone else. Please select another slot."
	msgCouldNotSave       = "Could not save your booking. Please try again."
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: date=%q, error=%v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			// Штатный исход конкурентного сабмита: слот заняли первыми
			h.logger.Warn("POST /bookings - Slot already booked: date=%s, slot_id=%s", req.Date, req.SlotID)
			if h.metrics != nil {
				h.metrics.IncBookingConflicts()
			}
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrMissingFields):
			h.logger.Warn("POST /bookings - Missing required fields: date=%s, slot_id=%s", req.Date, req.SlotID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings - Invalid email domain: date=%s, slot_id=%s", req.Date, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrInvalidContactNumber):
			h.logger.Warn("POST /bookings - Invalid contact number: date=%s, slot_id=%s", req.Date, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, createBooking.ErrTermsNotAccepted):
			h.logger.Warn("POST /bookings - Terms not accepted: date=%s, slot_id=%s", req.Date, req.SlotID)
			handlers.RespondBadRequest(w, msgTermsNotAccepted)

		case errors.Is(err, createBooking.ErrUnknownSlot):
			h.logger.Warn("POST /bookings - Unknown slot: date=%s, slot_id=%s", req.Date, req.SlotID)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s, slot_id=%s", req.Date, req.SlotID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrClosedDay):
			h.logger.Warn("POST /bookings - Closed day: date=%s, slot_id=%s", req.Date, req.SlotID)
			handlers.RespondBadRequest(w, msgClosedDay)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot_id=%s, error=%v",
				req.Date, req.SlotID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCouldNotSave)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	if h.metrics != nil {
		h.metrics.IncBookingsCreated()
	}
	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, slot_id=%s",
		result.ID, result.DateKey, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
