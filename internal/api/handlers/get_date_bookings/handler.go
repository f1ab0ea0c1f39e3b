package get_date_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/api/handlers"
	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	"github.com/Mohanrajjicate/drone-booking/internal/service/bookings"
)

const (
	msgMissingDate = "Query parameter 'date' is required."
	msgInvalidDate = "Invalid date, expected YYYY-MM-DD."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		h.logger.Warn("GET /bookings - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateKeyFormat, raw)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid input: date=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings - Failed to fetch bookings: date=%s, error=%v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings fetched: date=%s, count=%d", raw, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(raw, result))
}
