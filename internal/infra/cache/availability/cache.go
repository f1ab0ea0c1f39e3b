package availability

import (
	"sync"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// Cache карта занятости по месяцам в памяти процесса.
//
// Назначение двойное:
//   - оптимистичное обновление: успешный сабмит сразу помечает слот
//     занятым, не дожидаясь перечитывания из БД
//   - деградация: при ошибке месячной выборки отдается последняя
//     известная занятость вместо ошибки
//
// Источник истины — БД: Set при каждой успешной месячной выборке
// перезаписывает оптимистичные добавления целиком.
type Cache struct {
	mu     sync.RWMutex
	months map[string]domain.BookedSlots // ключ месяца YYYY-MM
}

// New создает пустой кеш занятости
func New() *Cache {
	return &Cache{
		months: make(map[string]domain.BookedSlots),
	}
}

// Set запоминает занятость месяца, замещая прежнее содержимое
func (c *Cache) Set(monthKey string, booked domain.BookedSlots) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.months[monthKey] = booked.Clone()
}

// Get возвращает копию занятости месяца, если она известна
func (c *Cache) Get(monthKey string) (domain.BookedSlots, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	booked, ok := c.months[monthKey]
	if !ok {
		return nil, false
	}
	return booked.Clone(), true
}

// Add оптимистично помечает слот занятым в месяце даты.
// Если месяц еще не загружался, помечать не в чем — запись появится
// при следующей месячной выборке.
func (c *Cache) Add(monthKey, dateKey, slotID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	booked, ok := c.months[monthKey]
	if !ok {
		return
	}
	booked.Add(dateKey, slotID)
}
