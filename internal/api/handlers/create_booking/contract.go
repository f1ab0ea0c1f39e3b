package create_booking

import (
	"context"

	createBooking "github.com/Mohanrajjicate/drone-booking/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счётчики бизнес-событий бронирования. Может быть nil,
// если метрики выключены в конфигурации.
type Metrics interface {
	IncBookingsCreated()
	IncBookingConflicts()
}
