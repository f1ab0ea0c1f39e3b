package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateForm_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"organization domain passes", "a@jkkn.ac.in", false},
		{"foreign domain fails", "a@gmail.com", true},
		{"empty passes until submit", "", false},
		{"suffix alone is enough", "student.2026@jkkn.ac.in", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateForm(FormData{Email: tt.email})
			if tt.wantErr {
				assert.Equal(t, "Email must end with @jkkn.ac.in", errs["email"])
			} else {
				assert.NotContains(t, errs, "email")
			}
		})
	}
}

func TestValidateForm_ContactNumber(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr bool
	}{
		{"ten digits pass", "9876543210", false},
		{"too short fails", "98765", true},
		{"too long fails", "98765432101", true},
		{"letters fail", "98765abcde", true},
		{"empty passes until submit", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateForm(FormData{ContactNumber: tt.number})
			if tt.wantErr {
				assert.Equal(t, "Must be a 10-digit number.", errs["contactNumber"])
			} else {
				assert.NotContains(t, errs, "contactNumber")
			}
		})
	}
}

func TestValidateForm_CollectsBothErrors(t *testing.T) {
	errs := ValidateForm(FormData{Email: "a@gmail.com", ContactNumber: "123"})
	assert.Len(t, errs, 2)
}

func TestRequiredFieldsPresent(t *testing.T) {
	form := FormData{
		Name:          "Priya",
		Email:         "priya@jkkn.ac.in",
		ContactNumber: "9876543210",
		College:       "JKKN College of Engineering and Technology",
	}
	assert.True(t, RequiredFieldsPresent(form))

	// Название события опционально
	form.EventName = nil
	assert.True(t, RequiredFieldsPresent(form))

	empty := form
	empty.College = ""
	assert.False(t, RequiredFieldsPresent(empty))
	assert.False(t, RequiredFieldsPresent(FormData{}))
}
