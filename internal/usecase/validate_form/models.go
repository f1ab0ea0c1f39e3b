package validate_form

import "github.com/Mohanrajjicate/drone-booking/internal/domain"

// Request модель запроса валидации формы
type Request struct {
	Form domain.FormData

	// SlotID выбранный слот; пустой, пока слот не выбран
	SlotID string

	// TermsAccepted флаг принятия условий
	TermsAccepted bool
}

// Response модель ответа с ошибками полей
type Response struct {
	// Errors отображение имени поля в сообщение; пусто, если
	// инлайн-правила выполнены
	Errors domain.FormErrors

	// SubmitReady true, когда сабмит пройдет все шлюзы: инлайн-ошибок
	// нет, обязательные поля заполнены, слот выбран и условия приняты
	SubmitReady bool
}
