package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
}

// CostLogRepository интерфейс репозитория cost log
type CostLogRepository interface {
	Create(ctx context.Context, entry *domain.CostLogEntry) (*domain.CostLogEntry, error)
}

// ParticipantRepository интерфейс репозитория участников
type ParticipantRepository interface {
	AddUsers(ctx context.Context, bookingTitle string, userIDs []int64) error
	AddPartners(ctx context.Context, bookingTitle string, partnerIDs []int64) error
}

// RoomRepository интерфейс справочника комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// DirectoryRepository интерфейс справочника команд и пользователей
type DirectoryRepository interface {
	GetTeamByID(ctx context.Context, id int64) (*domain.Team, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
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
