package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	bookingRepo "github.com/Mohanrajjicate/drone-booking/internal/infra/storage/booking"
)

// UseCase use case создания бронирования
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

// Execute выполняет use case создания бронирования.
//
// Выполняется ровно одна запись в БД, без автоматических повторов.
// От гонки конкурентных сабмитов защищает только ограничение
// уникальности (date, slot_id): его нарушение — штатный исход
// ErrSlotAlreadyBooked, после которого пользователь выбирает другой слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	dateKey := domain.DateKey(req.Date)
	uc.logger.Info("CreateBooking: date=%s, slot=%s, college=%q", dateKey, req.SlotID, req.Form.College)

	// 1. Шлюзы сабмита: обязательные поля, инлайн-правила, условия, слот
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в поясе площадки
	now := uc.timeProvider.Now()

	// 3. Проверяем дату: не прошлое и не воскресенье
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date=%s rejected: %v", dateKey, err)
		return nil, err
	}

	// 4. Дешевый отказ по известной занятости. Не гарантия — только
	// экономия записи; авторитетная проверка происходит на вставке.
	monthKey := domain.MonthKey(req.Date)
	if booked, ok := uc.cache.Get(monthKey); ok && booked.Has(dateKey, req.SlotID) {
		uc.logger.Warn("CreateBooking: slot %s already booked on %s (cached)", req.SlotID, dateKey)
		return nil, ErrSlotAlreadyBooked
	}

	// 5. Единственная запись: вставка под ограничением уникальности
	booking := &domain.Booking{
		Date:          req.Date,
		SlotID:        req.SlotID,
		Name:          req.Form.Name,
		Email:         req.Form.Email,
		ContactNumber: req.Form.ContactNumber,
		College:       req.Form.College,
		EventName:     req.Form.EventName,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s on %s just taken by a concurrent submitter", req.SlotID, dateKey)
			return nil, ErrSlotAlreadyBooked
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 6. Оптимистичное обновление кеша занятости: слот виден занятым
	// в последующих ответах без перечитывания; следующая месячная
	// выборка замещает запись данными из БД
	uc.cache.Add(monthKey, dateKey, req.SlotID)

	uc.logger.Info("CreateBooking: successfully created booking id=%d, date=%s, slot=%s",
		created.ID, dateKey, created.SlotID)

	return &Response{
		ID:               created.ID,
		SlotID:           created.SlotID,
		Name:             created.Name,
		DateKey:          dateKey,
		ConfirmationDate: req.Date.Format(domain.ConfirmationDateFormat),
		SlotLabel:        created.SlotLabel(),
		CreatedAt:        created.CreatedAt,
	}, nil
}
