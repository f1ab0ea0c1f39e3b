package domain

import "time"

// CalendarDay одна ячейка сетки календаря.
// Производное, неизменяемое значение: сетка пересоздается целиком
// при каждой смене отображаемого месяца.
type CalendarDay struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	IsPast         bool
	IsWeekend      bool
}

// Key returns the canonical date key of the cell
func (d *CalendarDay) Key() string {
	return DateKey(d.Date)
}

// BuildCalendarGrid строит сетку месяца ровно из 42 ячеек (6 строк по 7 дней),
// начиная с воскресенья: хвост предыдущего месяца слева, все дни текущего
// месяца, затем дни следующих месяцев до заполнения сетки.
//
// Выходными считаются только воскресенья, суббота — рабочий день.
// IsPast — строго раньше сегодняшнего дня; сам сегодняшний день не "прошлое".
// Чистая функция от (ref, today), без побочных эффектов.
func BuildCalendarGrid(ref time.Time, today time.Time) []CalendarDay {
	year, month, _ := ref.Date()
	loc := ref.Location()

	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	todayKey := DateKey(todayStart)

	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()
	leadDays := int(firstOfMonth.Weekday()) // 0 = Sunday

	days := make([]CalendarDay, 0, CalendarGridSize)

	// Хвост предыдущего месяца
	for i := leadDays; i > 0; i-- {
		date := firstOfMonth.AddDate(0, 0, -i)
		days = append(days, CalendarDay{
			Date:      date,
			IsPast:    date.Before(todayStart),
			IsWeekend: date.Weekday() == time.Sunday,
		})
	}

	// Дни текущего месяца
	for i := 0; i < daysInMonth; i++ {
		date := firstOfMonth.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:           date,
			IsCurrentMonth: true,
			IsToday:        DateKey(date) == todayKey,
			IsPast:         date.Before(todayStart),
			IsWeekend:      date.Weekday() == time.Sunday,
		})
	}

	// Дни следующего месяца до 42 ячеек. Дату двигаем последовательно:
	// при коротком месяце с пустым хвостом слева заполнение может
	// перешагнуть и во второй следующий месяц.
	next := firstOfMonth.AddDate(0, 1, 0)
	for len(days) < CalendarGridSize {
		days = append(days, CalendarDay{
			Date:      next,
			IsPast:    next.Before(todayStart),
			IsWeekend: next.Weekday() == time.Sunday,
		})
		next = next.AddDate(0, 0, 1)
	}

	return days
}
