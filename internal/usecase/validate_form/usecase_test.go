package validate_form

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func completeForm() domain.FormData {
	return domain.FormData{
		Name:          "Priya",
		Email:         "priya@jkkn.ac.in",
		ContactNumber: "9876543210",
		College:       "JKKN Dental College and Hospital",
	}
}

func TestExecute_CompleteFormIsSubmitReady(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Form:          completeForm(),
		SlotID:        "09-10",
		TermsAccepted: true,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Errors)
	assert.True(t, resp.SubmitReady)
}

func TestExecute_SubmitGatesBlockReadiness(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"no slot selected", func(r *Request) { r.SlotID = "" }},
		{"unknown slot", func(r *Request) { r.SlotID = "20-21" }},
		{"terms not accepted", func(r *Request) { r.TermsAccepted = false }},
		{"missing college", func(r *Request) { r.Form.College = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{Form: completeForm(), SlotID: "09-10", TermsAccepted: true}
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)
			// Шлюзы сабмита не подсвечивают поля, но блокируют кнопку
			assert.Empty(t, resp.Errors)
			assert.False(t, resp.SubmitReady)
		})
	}
}

func TestExecute_PartialFormHasNoErrorsButNotReady(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	// Пустые поля не подсвечиваются, но сабмит недоступен
	resp, err := uc.Execute(context.Background(), &Request{Form: domain.FormData{
		Name: "Priya",
	}})

	require.NoError(t, err)
	assert.Empty(t, resp.Errors)
	assert.False(t, resp.SubmitReady)
}

func TestExecute_InlineErrorsBlockSubmit(t *testing.T) {
	uc := NewUseCase(noopLogger{})

	form := completeForm()
	form.Email = "priya@gmail.com"
	form.ContactNumber = "98765"

	resp, err := uc.Execute(context.Background(), &Request{
		Form:          form,
		SlotID:        "09-10",
		TermsAccepted: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Email must end with @jkkn.ac.in", resp.Errors["email"])
	assert.Equal(t, "Must be a 10-digit number.", resp.Errors["contactNumber"])
	assert.False(t, resp.SubmitReady)
}
