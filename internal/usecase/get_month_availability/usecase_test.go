package get_month_availability

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
	rows     []booking.BookedSlotRow
	err      error
	calls    int
	lastFrom string
	lastTo   string
}

func (f *fakeRepo) FetchBookedSlots(_ context.Context, fromKey, toKey string) ([]booking.BookedSlotRow, error) {
	f.calls++
	f.lastFrom, f.lastTo = fromKey, toKey
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

func TestExecute_BuildsGridAndReducesRows(t *testing.T) {
	repo := &fakeRepo{rows: []booking.BookedSlotRow{
		{DateKey: "2026-03-18", SlotID: "09-10"},
		{DateKey: "2026-03-18", SlotID: "10-11"},
		{DateKey: "2026-03-18", SlotID: "09-10"}, // дубликат отбрасывается
		{DateKey: "2026-03-20", SlotID: "14-15"},
	}}
	cache := availabilityCache.New()
	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, cache, now)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.March})

	require.NoError(t, err)
	assert.Len(t, resp.Days, domain.CalendarGridSize)
	assert.False(t, resp.Degraded)

	// Диапазон выборки - границы месяца
	assert.Equal(t, "2026-03-01", repo.lastFrom)
	assert.Equal(t, "2026-03-31", repo.lastTo)

	assert.Equal(t, []string{"09-10", "10-11"}, resp.Booked["2026-03-18"])
	assert.Equal(t, []string{"14-15"}, resp.Booked["2026-03-20"])

	// Успешная выборка кешируется для последующих точечных запросов
	cached, ok := cache.Get("2026-03")
	require.True(t, ok)
	assert.True(t, cached.Has("2026-03-18", "09-10"))
}

func TestExecute_FetchErrorDegradesToCached(t *testing.T) {
	cache := availabilityCache.New()
	known := domain.BookedSlots{}
	known.Add("2026-03-18", "09-10")
	cache.Set("2026-03", known)

	repo := &fakeRepo{err: errors.New("connection refused")}
	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, cache, now)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.March})

	// Сбой хранилища не валит календарь
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Len(t, resp.Days, domain.CalendarGridSize)
	assert.True(t, resp.Booked.Has("2026-03-18", "09-10"))
}

func TestExecute_FetchErrorWithoutCacheDegradesToEmpty(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, availabilityCache.New(), now)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: time.April})

	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Empty(t, resp.Booked)
}

func TestExecute_ValidatesInput(t *testing.T) {
	repo := &fakeRepo{}
	now := time.Date(2026, time.March, 17, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, availabilityCache.New(), now)

	_, err := uc.Execute(context.Background(), &Request{Year: 2026, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 1990, Month: time.March})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, repo.calls)
}
