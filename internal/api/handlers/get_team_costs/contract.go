package get_team_costs

import (
	"context"

	getTeamCosts "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_team_costs"
)

type GetTeamCostsUseCase interface {
	Execute(ctx context.Context, req *getTeamCosts.Request) (*getTeamCosts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
