package get_booking_options

import (
	"net/http"

	"github.com/Mohanrajjicate/drone-booking/internal/api/handlers"
	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeSlotResponse HTTP модель временного слота
type TimeSlotResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// BookingOptionsResponse справочники для формы бронирования
type BookingOptionsResponse struct {
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
	Colleges  []string           `json:"colleges"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/booking-options
//
// Справочники фиксированы в домене, поэтому ответ строится без
// обращения к хранилищу.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots := domain.TimeSlots()
	timeSlots := make([]TimeSlotResponse, 0, len(slots))
	for _, slot := range slots {
		timeSlots = append(timeSlots, TimeSlotResponse{ID: slot.ID, Label: slot.Label})
	}

	colleges := make([]string, len(domain.Colleges))
	copy(colleges, domain.Colleges)

	handlers.RespondJSON(w, http.StatusOK, &BookingOptionsResponse{
		TimeSlots: timeSlots,
		Colleges:  colleges,
	})
}
