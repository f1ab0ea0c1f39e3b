package domain

import "strings"

// Сообщения инлайн-ошибок полей формы
const (
	msgEmailError   = "Email must end with @jkkn.ac.in"
	msgContactError = "Must be a 10-digit number."
)

// FormData транзиентное состояние контактной формы
type FormData struct {
	Name          string
	Email         string
	ContactNumber string
	College       string
	EventName     *string
}

// FormErrors отображение имени поля в сообщение об ошибке.
// Пустая карта означает, что инлайн-правила выполнены.
type FormErrors map[string]string

// ValidateForm чистая функция валидации формы: пересчитывается при каждом
// изменении данных, без скрытого реактивного состояния.
//
// Инлайн-правила действуют только для непустых значений: пустое поле
// не дает ошибки до проверки обязательности на сабмите.
func ValidateForm(form FormData) FormErrors {
	errors := FormErrors{}

	if form.Email != "" && !strings.HasSuffix(form.Email, AllowedEmailDomain) {
		errors["email"] = msgEmailError
	}

	if form.ContactNumber != "" && !isTenDigits(form.ContactNumber) {
		errors["contactNumber"] = msgContactError
	}

	return errors
}

// RequiredFieldsPresent проверка обязательности на сабмите:
// имя, email, контактный номер и колледж должны быть непустыми
func RequiredFieldsPresent(form FormData) bool {
	return form.Name != "" &&
		form.Email != "" &&
		form.ContactNumber != "" &&
		form.College != ""
}

// isTenDigits проверяет, что строка состоит ровно из 10 десятичных цифр
func isTenDigits(s string) bool {
	if len(s) != ContactNumberLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
