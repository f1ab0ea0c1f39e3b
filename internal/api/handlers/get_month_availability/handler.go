package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Mohanrajjicate/drone-booking/internal/api/handlers"
	monthAvailability "github.com/Mohanrajjicate/drone-booking/internal/usecase/get_month_availability"
)

const (
	msgInvalidYear  = "Invalid year."
	msgInvalidMonth = "Invalid month, expected 1-12."
	msgInvalidInput = "Invalid year or month."
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /availability - Invalid year: %q", vars["year"])
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /availability - Invalid month: %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &monthAvailability.Request{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		switch {
		case errors.Is(err, monthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to load availability: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Month loaded: year=%d, month=%d, degraded=%t", year, month, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
