package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Mohanrajjicate/drone-booking/internal/domain"
	"github.com/Mohanrajjicate/drone-booking/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// BookedSlotRow проекция (дата, слот) для построения карты занятости
type BookedSlotRow struct {
	DateKey string
	SlotID  string
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Ограничение уникальности (date, slot_id) в БД — единственная защита
// от двойного бронирования: при его нарушении возвращается ErrSlotTaken,
// транзакций и блокировок не требуется.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"date",
			"slot_id",
			"name",
			"email",
			"contact_number",
			"college",
			"event_name",
		).
		Values(
			b.DateKey(),
			b.SlotID,
			b.Name,
			b.Email,
			b.ContactNumber,
			b.College,
			b.EventName,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"slot_id",
		"name",
		"email",
		"contact_number",
		"college",
		"event_name",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Date,
		&b.SlotID,
		&b.Name,
		&b.Email,
		&b.ContactNumber,
		&b.College,
		&b.EventName,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}

// FetchBookedSlots получает все занятые пары (дата, слот) в диапазоне дат
// [fromKey, lastKey] включительно. Ключи дат — каноничный формат YYYY-MM-DD,
// он же используется как границы запроса.
func (r *Repository) FetchBookedSlots(ctx context.Context, fromKey, toKey string) ([]BookedSlotRow, error) {
	query, args, err := psqlbuilder.Select("date", "slot_id").
		From("bookings").
		Where(squirrel.GtOrEq{"date": fromKey}).
		Where(squirrel.LtOrEq{"date": toKey}).
		OrderBy("date ASC, slot_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FetchBookedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchBookedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]BookedSlotRow, 0)
	for rows.Next() {
		var date time.Time
		var slotID string
		if err := rows.Scan(&date, &slotID); err != nil {
			return nil, fmt.Errorf("%w: FetchBookedSlots - scan row: %v", ErrScanRow, err)
		}
		result = append(result, BookedSlotRow{
			DateKey: domain.DateKey(date),
			SlotID:  slotID,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FetchBookedSlots - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByDate получает все бронирования на указанную дату,
// отсортированные по идентификатору слота
func (r *Repository) GetByDate(ctx context.Context, dateKey string) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"slot_id",
		"name",
		"email",
		"contact_number",
		"college",
		"event_name",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"date": dateKey}).
		OrderBy("slot_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.Date,
			&b.SlotID,
			&b.Name,
			&b.Email,
			&b.ContactNumber,
			&b.College,
			&b.EventName,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation проверяет, что ошибка — нарушение ограничения
// уникальности PostgreSQL (код 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
