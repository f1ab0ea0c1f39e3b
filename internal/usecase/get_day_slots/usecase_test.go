package get_day_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	availabilityCache "github.com/Mohanrajjicate/drone-booking/internal/infra/cache/availability"
	"github.com/Mohanrajjicate/drone-booking/internal/infra/storage/booking"
)

type fakeRepo struct {
	rows  []booking.BookedSlotRow
	err   error
	calls int
}

func (f *fakeRepo) FetchBookedSlots(_ context.Context, fromKey, toKey string) ([]booking.BookedSlotRow, error) {
	f.calls++
	return f.rows, f.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, cache *availabilityCache.Cache, now time.Time) *UseCase {
	uc := NewUseCase(repo, cache, time.UTC, noopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute_UsesCachedMonthWithoutRefetch(t *testing.T) {
	repo := &fakeRepo{}
	cache := availabilityCache.New()

	loaded := domain.BookedSlots{}
	loaded.Add("2026-03-18", "09-10")
	cache.Set("2026-03", loaded)

	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, cache, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Zero(t, repo.calls, "cached month must not hit storage")
	assert.True(t, resp.Bookable)
	assert.Len(t, resp.AvailableSlots, domain.TotalSlots()-1)
	require.Len(t, resp.BookedSlots, 1)
	assert.Equal(t, "09-10", resp.BookedSlots[0].ID)
}

func TestExecute_OptimisticBookingVisibleWithoutRefetch(t *testing.T) {
	repo := &fakeRepo{}
	cache := availabilityCache.New()

	// Забронированы все слоты, кроме последнего
	loaded := domain.BookedSlots{}
	slots := domain.TimeSlots()
	for _, slot := range slots[:len(slots)-1] {
		loaded.Add("2026-03-18", slot.ID)
	}
	cache.Set("2026-03", loaded)

	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, cache, now)
	dayReq := &Request{Date: time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), dayReq)
	require.NoError(t, err)
	assert.True(t, resp.Bookable)

	// Оптимистичная отметка последнего слота переводит дату в
	// "занято целиком" без обращения к хранилищу
	cache.Add("2026-03", "2026-03-18", slots[len(slots)-1].ID)

	resp, err = uc.Execute(context.Background(), dayReq)
	require.NoError(t, err)
	assert.False(t, resp.Bookable)
	assert.Equal(t, domain.ReasonFullyBooked, resp.Reason)
	assert.Equal(t, "This date is fully booked.", resp.Message)
	assert.Empty(t, resp.AvailableSlots)
	assert.Zero(t, repo.calls)
}

func TestExecute_ColdMonthFetchesSingleDay(t *testing.T) {
	repo := &fakeRepo{rows: []booking.BookedSlotRow{
		{DateKey: "2026-03-18", SlotID: "14-15"},
	}}
	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, availabilityCache.New(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	require.Len(t, resp.BookedSlots, 1)
	assert.Equal(t, "14-15", resp.BookedSlots[0].ID)
}

func TestExecute_FetchErrorTreatsDayAsFree(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, availabilityCache.New(), now)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.True(t, resp.Bookable)
	assert.Len(t, resp.AvailableSlots, domain.TotalSlots())
}

func TestExecute_ViewOnlyReasons(t *testing.T) {
	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		reason  domain.UnavailableReason
		message string
	}{
		{
			"past date",
			time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC),
			domain.ReasonPast,
			"This date is in the past and cannot be booked.",
		},
		{
			"sunday",
			time.Date(2026, time.March, 22, 0, 0, 0, 0, time.UTC),
			domain.ReasonClosedDay,
			"Bookings are not available on Sundays.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeRepo{}, availabilityCache.New(), now)

			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date})
			require.NoError(t, err)
			assert.False(t, resp.Bookable)
			assert.Equal(t, tt.reason, resp.Reason)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestExecute_RequiresDate(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, availabilityCache.New(), time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
