package get_month_availability

import (
	"context"

	monthAvailability "github.com/Mohanrajjicate/drone-booking/internal/usecase/get_month_availability"
)

type GetMonthAvailabilityUseCase interface {
	Execute(ctx context.Context, req *monthAvailability.Request) (*monthAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
