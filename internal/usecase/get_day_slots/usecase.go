package get_day_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// UseCase use case получения доступности и слотов на конкретную дату
type UseCase struct {
	bookingRepo  BookingRepository
	cache        AvailabilityCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cache AvailabilityCache,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{Location: loc},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов на дату.
//
// Занятость берется из кеша месяца, если он уже загружался: так успешный
// сабмит виден в последующих ответах без перечитывания из БД. Для еще не
// загружавшегося месяца выполняется точечная выборка одного дня.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	dateKey := domain.DateKey(req.Date)
	uc.logger.Info("GetDaySlots: date=%s", dateKey)

	// 2. Получаем текущее время в поясе площадки
	now := uc.timeProvider.Now()

	// 3. Занятость: кеш месяца либо точечная выборка дня
	booked, ok := uc.cache.Get(domain.MonthKey(req.Date))
	if !ok {
		booked = domain.BookedSlots{}
		rows, err := uc.bookingRepo.FetchBookedSlots(ctx, dateKey, dateKey)
		if err != nil {
			// Та же деградация, что и для месячной выборки:
			// неизвестная занятость считается пустой
			uc.logger.Error("GetDaySlots: fetch failed for %s, treating day as free: %v", dateKey, err)
		} else {
			for _, row := range rows {
				booked.Add(row.DateKey, row.SlotID)
			}
		}
	}

	// 4. Вычисляем доступность даты
	reason := domain.DateUnavailableReason(req.Date, now, booked)

	resp := &Response{
		Date:           req.Date,
		Bookable:       reason == domain.ReasonNone,
		Reason:         reason,
		Message:        reason.Message(),
		AvailableSlots: booked.AvailableFor(dateKey),
		BookedSlots:    booked.BookedFor(dateKey),
	}

	uc.logger.Info("GetDaySlots: date=%s, bookable=%t, available=%d, booked=%d",
		dateKey, resp.Bookable, len(resp.AvailableSlots), len(resp.BookedSlots))

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
