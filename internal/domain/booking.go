package domain

import "time"

// Booking represents a confirmed drone reservation
type Booking struct {
	ID            int64
	Date          time.Time // дата бронирования (без времени)
	SlotID        string
	Name          string
	Email         string
	ContactNumber string
	College       string
	EventName     *string // опционально, для медиа-проектов с названием события

	CreatedAt time.Time
}

// DateKey returns the canonical YYYY-MM-DD key of the booking date
func (b *Booking) DateKey() string {
	return DateKey(b.Date)
}

// SlotLabel returns the human-readable label of the booked slot
func (b *Booking) SlotLabel() string {
	slot, ok := SlotByID(b.SlotID)
	if !ok {
		return b.SlotID
	}
	return slot.Label
}

// DateKey форматирует дату в каноничный ключ YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// MonthKey форматирует дату в ключ месяца YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthBounds возвращает ключи первого и последнего дня месяца указанной даты
func MonthBounds(t time.Time) (firstKey, lastKey string) {
	year, month, _ := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return DateKey(first), DateKey(last)
}
