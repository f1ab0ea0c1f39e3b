package validate_form

import (
	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	validateForm "github.com/Mohanrajjicate/drone-booking/internal/usecase/validate_form"
)

// ValidateFormRequest HTTP request model
type ValidateFormRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contactNumber"`
	College       string  `json:"college"`
	EventName     *string `json:"eventName,omitempty"`
	SlotID        string  `json:"slotId"`
	TermsAccepted bool    `json:"termsAccepted"`
}

// ValidateFormResponse HTTP response model
type ValidateFormResponse struct {
	// Errors отображение имени поля в сообщение для инлайн-подсветки
	Errors map[string]string `json:"errors"`

	// SubmitReady true, когда форму можно отправлять
	SubmitReady bool `json:"submitReady"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateFormRequest) ToUseCaseRequest() *validateForm.Request {
	return &validateForm.Request{
		Form: domain.FormData{
			Name:          r.Name,
			Email:         r.Email,
			ContactNumber: r.ContactNumber,
			College:       r.College,
			EventName:     r.EventName,
		},
		SlotID:        r.SlotID,
		TermsAccepted: r.TermsAccepted,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateForm.Response) *ValidateFormResponse {
	errs := make(map[string]string, len(resp.Errors))
	for field, message := range resp.Errors {
		errs[field] = message
	}

	return &ValidateFormResponse{
		Errors:      errs,
		SubmitReady: resp.SubmitReady,
	}
}
