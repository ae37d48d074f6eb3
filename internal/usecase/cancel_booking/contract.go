package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CostLogRepository интерфейс репозитория cost log
type CostLogRepository interface {
	DeleteByTitle(ctx context.Context, bookingTitle string) error
}

// ParticipantRepository интерфейс репозитория участников
type ParticipantRepository interface {
	DeleteByTitle(ctx context.Context, bookingTitle string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
