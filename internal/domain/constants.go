package domain

// Time format constants
const (
	// DateKeyFormat каноничный ключ даты YYYY-MM-DD.
	// Используется и как ключ карты занятости, и как граница запросов к БД.
	DateKeyFormat = "2006-01-02"

	// ConfirmationDateFormat человекочитаемая дата для экрана подтверждения
	ConfirmationDateFormat = "Monday, January 2"
)

// Form validation constants
const (
	// AllowedEmailDomain почтовый домен организации, только такие адреса принимаются
	AllowedEmailDomain = "@jkkn.ac.in"

	// ContactNumberLength количество цифр в контактном номере
	ContactNumberLength = 10
)

// CalendarGridSize размер сетки календаря: 6 строк по 7 дней
const CalendarGridSize = 42

// Colleges список колледжей организации для поля формы
var Colleges = []string{
	"JKKN College of Engineering & Technology",
	"JKKN College of Arts & Science",
	"JKKN College of Pharmacy",
	"JKKN Dental College & Hospital",
	"JKKN College of Allied Health Sciences",
	"JKKN College of Education",
	"Sresakthimayeil Institute of Nursing & Research",
}
