package get_team_costs

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case для агрегации расходов команд за период
type UseCase struct {
	costLogRepo CostLogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(costLogRepo CostLogRepository, logger Logger) *UseCase {
	return &UseCase{
		costLogRepo: costLogRepo,
		logger:      logger,
	}
}

// Execute выполняет use case агрегации расходов
// Суммы считаются по записям cost log: зафиксированная при бронировании
// стоимость и имя команды на тот момент, независимо от последующих
// изменений тарифов и удаления команд
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTeamCosts: start=%s, end=%s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		uc.logger.Warn("GetTeamCosts: both start and end dates are required")
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	// 2. Нормализуем границы периода к календарным датам (обе включительны)
	startDate := domain.TruncateToDay(req.StartDate)
	endDate := domain.TruncateToDay(req.EndDate)
	if endDate.Before(startDate) {
		uc.logger.Warn("GetTeamCosts: end date %s is before start date %s",
			endDate.Format(domain.DateFormat), startDate.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	// 3. Агрегируем расходы по командам
	totals, err := uc.costLogRepo.SumByTeam(ctx, startDate, endDate)
	if err != nil {
		uc.logger.Error("GetTeamCosts: failed to sum costs: %v", err)
		return nil, fmt.Errorf("%w: failed to sum costs: %v", ErrInternal, err)
	}

	// 4. Формируем ответ
	teams := make([]TeamCost, 0, len(totals))
	for _, t := range totals {
		teams = append(teams, TeamCost{TeamName: t.TeamName, TotalCost: t.TotalCost})
	}

	uc.logger.Info("GetTeamCosts: %d teams with costs in range", len(teams))

	return &Response{
		StartDate: startDate,
		EndDate:   endDate,
		Teams:     teams,
	}, nil
}
