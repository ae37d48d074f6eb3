package get_participants

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetParticipants(ctx context.Context, bookingID int64) (*models.ParticipantsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
