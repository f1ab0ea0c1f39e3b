package get_day_slots

import (
	"context"

	daySlots "github.com/Mohanrajjicate/drone-booking/internal/usecase/get_day_slots"
)

type GetDaySlotsUseCase interface {
	Execute(ctx context.Context, req *daySlots.Request) (*daySlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
