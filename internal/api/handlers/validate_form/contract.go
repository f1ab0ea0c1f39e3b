package validate_form

import (
	"context"

	validateForm "github.com/Mohanrajjicate/drone-booking/internal/usecase/validate_form"
)

type ValidateFormUseCase interface {
	Execute(ctx context.Context, req *validateForm.Request) (*validateForm.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
