package get_day_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/api/handlers"
	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	daySlots "github.com/Mohanrajjicate/drone-booking/internal/usecase/get_day_slots"
)

const (
	msgMissingDate = "Query parameter 'date' is required."
	msgInvalidDate = "Invalid date, expected YYYY-MM-DD."
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/day?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		h.logger.Warn("GET /availability/day - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateKeyFormat, raw)
	if err != nil {
		h.logger.Warn("GET /availability/day - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &daySlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, daySlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/day - Invalid input: date=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/day - Failed to load slots: date=%s, error=%v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/day - Slots loaded: date=%s, bookable=%t, available=%d",
		raw, result.Bookable, len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
