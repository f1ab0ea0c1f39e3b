package create_booking

import (
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date          time.Time       // дата бронирования (без времени)
	SlotID        string          // идентификатор слота, например "09-10"
	Form          domain.FormData // контактная форма
	TermsAccepted bool            // флаг принятия условий
}

// Response модель ответа с подтверждением бронирования
type Response struct {
	ID     int64
	SlotID string

	// Данные для экрана подтверждения
	Name             string
	DateKey          string // каноничный ключ YYYY-MM-DD
	ConfirmationDate string // человекочитаемая дата, например "Monday, January 5"
	SlotLabel        string

	CreatedAt time.Time
}
