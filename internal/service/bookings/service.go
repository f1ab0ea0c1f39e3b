package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	bookingRepo "github.com/Mohanrajjicate/drone-booking/internal/infra/storage/booking"
	"github.com/Mohanrajjicate/drone-booking/internal/service/bookings/models"
)

// Service сервис чтения бронирований (просмотр для лаборатории)
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByDate получает все бронирования на дату, по порядку слотов
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	dateKey := domain.DateKey(date)
	s.logger.Info("GetByDate: fetching bookings for date=%s", dateKey)

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, dateKey)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for date=%s", len(bookings), dateKey)
	return models.FromDomainBookingList(bookings), nil
}
