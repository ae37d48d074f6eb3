package create_team

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

type DirectoryService interface {
	CreateTeam(ctx context.Context, req *models.CreateTeamRequest) (*models.TeamResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
