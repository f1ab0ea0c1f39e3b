package domain

import "sort"

// BookedSlots занятость месяца: ключ даты YYYY-MM-DD -> идентификаторы
// занятых слотов этого дня.
//
// Инварианты:
//   - ключ присутствует только если в этот день занят хотя бы один слот
//   - идентификаторы слотов внутри дня уникальны (дубликаты из строк БД
//     отбрасываются защитно, хотя ограничение уникальности в хранилище
//     не должно их допускать)
type BookedSlots map[string][]string

// Add добавляет занятый слот к дате. Повторное добавление уже занятого
// слота не меняет карту. Список слотов дня держится отсортированным.
func (bs BookedSlots) Add(dateKey, slotID string) {
	for _, id := range bs[dateKey] {
		if id == slotID {
			return
		}
	}
	bs[dateKey] = append(bs[dateKey], slotID)
	sort.Strings(bs[dateKey])
}

// Has reports whether the slot is booked on the given date
func (bs BookedSlots) Has(dateKey, slotID string) bool {
	for _, id := range bs[dateKey] {
		if id == slotID {
			return true
		}
	}
	return false
}

// CountFor returns the number of booked slots on the given date
func (bs BookedSlots) CountFor(dateKey string) int {
	return len(bs[dateKey])
}

// IsFullyBooked returns true iff every defined slot is booked on the date
func (bs BookedSlots) IsFullyBooked(dateKey string) bool {
	return bs.CountFor(dateKey) >= TotalSlots()
}

// AvailableFor возвращает свободные слоты даты в порядке их определения
func (bs BookedSlots) AvailableFor(dateKey string) []TimeSlot {
	available := make([]TimeSlot, 0, TotalSlots())
	for _, slot := range timeSlots {
		if !bs.Has(dateKey, slot.ID) {
			available = append(available, slot)
		}
	}
	return available
}

// BookedFor возвращает занятые слоты даты в порядке их определения
func (bs BookedSlots) BookedFor(dateKey string) []TimeSlot {
	booked := make([]TimeSlot, 0, bs.CountFor(dateKey))
	for _, slot := range timeSlots {
		if bs.Has(dateKey, slot.ID) {
			booked = append(booked, slot)
		}
	}
	return booked
}

// Clone возвращает глубокую копию карты занятости
func (bs BookedSlots) Clone() BookedSlots {
	clone := make(BookedSlots, len(bs))
	for key, ids := range bs {
		clone[key] = append([]string(nil), ids...)
	}
	return clone
}
