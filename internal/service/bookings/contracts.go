package bookings

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListWithDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error)
}

// ParticipantRepository интерфейс репозитория участников
type ParticipantRepository interface {
	ListUserAttendees(ctx context.Context, bookingTitle string) ([]domain.AttendeeUser, error)
	ListPartnerAttendees(ctx context.Context, bookingTitle string) ([]domain.AttendeePartner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
