package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Домены часа начала и длительности проверяются защитно, даже если
// вызывающая сторона уже ограничила выбор
func validateRequest(req *Request) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.BookerID <= 0 {
		return fmt.Errorf("%w: bookerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartHour < domain.MinStartHour || req.StartHour > domain.MaxStartHour {
		return fmt.Errorf("%w: start hour %d is outside %d-%d",
			ErrInvalidStartHour, req.StartHour, domain.MinStartHour, domain.MaxStartHour)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration %d is outside %d-%d",
			ErrInvalidDuration, req.DurationHours, domain.MinDurationHours, domain.MaxDurationHours)
	}

	return nil
}

// findConflict возвращает первое бронирование, пересекающееся с запрошенным
// полуоткрытым интервалом [startHour, startHour+durationHours), или nil
// Встык пересечением не считается: [9,11) и [11,13) совместимы
func findConflict(startHour, durationHours int, bookings []*domain.Booking) *domain.Booking {
	endHour := startHour + durationHours

	for _, b := range bookings {
		if b.Overlaps(startHour, endHour) {
			return b
		}
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
// Сегодняшняя дата прошлой не считается: бронирование на сегодня допустимо
func isDateInPast(date, now time.Time) bool {
	return domain.TruncateToDay(date).Before(domain.TruncateToDay(now))
}
