package create_booking

import (
	"context"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// AvailabilityCache интерфейс кеша занятости по месяцам
type AvailabilityCache interface {
	Get(monthKey string) (domain.BookedSlots, bool)
	Add(monthKey, dateKey, slotID string)
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
