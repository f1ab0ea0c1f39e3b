package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/Mohanrajjicate/drone-booking/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type fakeMetrics struct {
	created   int
	conflicts int
}

func (f *fakeMetrics) IncBookingsCreated()  { f.created++ }
func (f *fakeMetrics) IncBookingConflicts() { f.conflicts++ }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"date": "2026-03-18",
	"slotId": "09-10",
	"name": "Priya",
	"email": "priya@jkkn.ac.in",
	"contactNumber": "9876543210",
	"college": "JKKN College of Engineering and Technology",
	"termsAccepted": true
}`

func doRequest(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_CreatedResponse(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:               7,
		SlotID:           "09-10",
		Name:             "Priya",
		DateKey:          "2026-03-18",
		ConfirmationDate: "Wednesday, March 18",
		SlotLabel:        "9:00 AM - 10:00 AM",
		CreatedAt:        time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC),
	}}
	metrics := &fakeMetrics{}
	handler := NewHandler(uc, metrics, noopLogger{})

	rec := doRequest(t, handler, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingConfirmationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-03-18", resp.Date)
	assert.Equal(t, "Wednesday, March 18", resp.ConfirmationDate)
	assert.Equal(t, "9:00 AM - 10:00 AM", resp.SlotLabel)
	assert.Equal(t, 1, metrics.created)

	// Дата распарсена в каноничном формате
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "2026-03-18", uc.lastReq.Date.Format("2006-01-02"))
	assert.True(t, uc.lastReq.TermsAccepted)
}

func TestHandle_ConflictMapsTo409(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotAlreadyBooked}
	metrics := &fakeMetrics{}
	handler := NewHandler(uc, metrics, noopLogger{})

	rec := doRequest(t, handler, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(),
		"This time slot has just been booked by someone else. Please select another slot.")
	assert.Equal(t, 1, metrics.conflicts)
	assert.Equal(t, 0, metrics.created)
}

func TestHandle_ValidationErrorsMapTo400(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"missing fields", createBooking.ErrMissingFields, "Please fill in all required fields."},
		{"invalid email", createBooking.ErrInvalidEmail, "Email must end with @jkkn.ac.in"},
		{"invalid contact", createBooking.ErrInvalidContactNumber, "Must be a 10-digit number."},
		{"terms", createBooking.ErrTermsNotAccepted, "You must accept the terms and conditions."},
		{"unknown slot", createBooking.ErrUnknownSlot, "Unknown time slot."},
		{"past date", createBooking.ErrDateInPast, "This date is in the past and cannot be booked."},
		{"sunday", createBooking.ErrClosedDay, "Bookings are not available on Sundays."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.err}, nil, noopLogger{})

			rec := doRequest(t, handler, validBody)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestHandle_InternalFailureUsesSaveMessage(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}
	handler := NewHandler(uc, nil, noopLogger{})

	rec := doRequest(t, handler, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not save your booking. Please try again.")
}

func TestHandle_MalformedInput(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nil, noopLogger{})

	rec := doRequest(t, handler, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Неизвестные поля отклоняются
	rec = doRequest(t, handler, `{"date": "2026-03-18", "slotId": "09-10", "isAdmin": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body.")

	rec = doRequest(t, handler, `{"date": "18-03-2026", "slotId": "09-10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid booking date")
}
