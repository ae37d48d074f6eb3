package get_available_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

// occupiedRoomIDs возвращает множество ID комнат, у которых хотя бы одно
// бронирование на эту дату пересекается с интервалом [startHour, endHour)
// Бронирования встык комнату не занимают
func occupiedRoomIDs(startHour, endHour int, bookings []*domain.Booking) map[int64]struct{} {
	occupied := make(map[int64]struct{})

	for _, b := range bookings {
		if b.Overlaps(startHour, endHour) {
			occupied[b.RoomID] = struct{}{}
		}
	}

	return occupied
}
