package validate_form

import (
	"context"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// UseCase use case валидации контактной формы.
// Чистое вычисление: карта ошибок выводится из значений полей заново
// при каждом вызове, SPA дергает его на каждое изменение поля.
type UseCase struct {
	logger Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет валидацию формы
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	errors := domain.ValidateForm(req.Form)

	return &Response{
		Errors: errors,
		// Кнопка сабмита доступна только когда инлайн-ошибок нет,
		// все обязательные поля заполнены, выбран известный слот
		// и приняты условия
		SubmitReady: len(errors) == 0 &&
			domain.RequiredFieldsPresent(req.Form) &&
			domain.IsValidSlotID(req.SlotID) &&
			req.TermsAccepted,
	}, nil
}
