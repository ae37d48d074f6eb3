package get_team_costs

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// CostLogRepository интерфейс репозитория cost log
type CostLogRepository interface {
	SumByTeam(ctx context.Context, startDate, endDate time.Time) ([]domain.TeamCostTotal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
