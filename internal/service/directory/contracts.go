package directory

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// DirectoryRepository интерфейс справочника команд и пользователей
type DirectoryRepository interface {
	GetTeamByID(ctx context.Context, id int64) (*domain.Team, error)
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	DeleteUsersByTeam(ctx context.Context, teamID int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для проверки будущих встреч перед удалением из справочника
type BookingRepository interface {
	HasFutureByTeam(ctx context.Context, teamID int64, now time.Time) (bool, error)
	HasFutureByUser(ctx context.Context, userID int64, now time.Time) (bool, error)
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
