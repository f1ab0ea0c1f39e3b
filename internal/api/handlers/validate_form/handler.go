package validate_form

import (
	"net/http"

	"github.com/Mohanrajjicate/drone-booking/internal/api/handlers"
)

const msgInvalidRequestBody = "Invalid request body."

type Handler struct {
	useCase ValidateFormUseCase
	logger  Logger
}

func NewHandler(useCase ValidateFormUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		h.logger.Error("POST /bookings/validate - Failed to validate form: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
