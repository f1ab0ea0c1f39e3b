package get_month_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
)

// UseCase use case получения сетки календаря и занятости месяца
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

// Execute выполняет use case получения занятости месяца.
//
// Ошибка выборки из хранилища не фатальна: занятость деградирует до
// последней закешированной (или пустой) карты — лучше показать календарь
// без отметок, чем не показать его вовсе; двойное бронирование при этом
// все равно отсечет ограничение уникальности в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: year=%d, month=%d", req.Year, int(req.Month))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в поясе площадки
	now := uc.timeProvider.Now()

	// 3. Строим сетку календаря: ровно 42 ячейки от воскресенья
	ref := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, now.Location())
	days := domain.BuildCalendarGrid(ref, now)

	// 4. Загружаем занятость месяца из хранилища
	firstKey, lastKey := domain.MonthBounds(ref)
	monthKey := domain.MonthKey(ref)

	rows, err := uc.bookingRepo.FetchBookedSlots(ctx, firstKey, lastKey)
	if err != nil {
		// Деградация вместо ошибки: показываем последнее известное
		uc.logger.Error("GetMonthAvailability: fetch failed for %s..%s, degrading to cached availability: %v",
			firstKey, lastKey, err)

		booked, ok := uc.cache.Get(monthKey)
		if !ok {
			booked = domain.BookedSlots{}
		}
		return &Response{
			Year:     req.Year,
			Month:    req.Month,
			Today:    now,
			Days:     days,
			Booked:   booked,
			Degraded: true,
		}, nil
	}

	// 5. Сворачиваем строки в карту занятости (с защитной дедупликацией)
	booked := domain.BookedSlots{}
	for _, row := range rows {
		booked.Add(row.DateKey, row.SlotID)
	}

	// 6. Перечитанная занятость замещает оптимистичные добавления в кеше
	uc.cache.Set(monthKey, booked)

	uc.logger.Info("GetMonthAvailability: month=%s, %d booked pairs on %d days",
		monthKey, len(rows), len(booked))

	return &Response{
		Year:   req.Year,
		Month:  req.Month,
		Today:  now,
		Days:   days,
		Booked: booked,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.Year < 2000 || req.Year > 2200 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	return nil
}
