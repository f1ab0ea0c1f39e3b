package get_day_slots

import (
	"context"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	"github.com/Mohanrajjicate/drone-booking/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FetchBookedSlots(ctx context.Context, fromKey, toKey string) ([]booking.BookedSlotRow, error)
}

// AvailabilityCache интерфейс кеша занятости по месяцам
type AvailabilityCache interface {
	Get(monthKey string) (domain.BookedSlots, bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в поясе площадки
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в поясе площадки
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}
