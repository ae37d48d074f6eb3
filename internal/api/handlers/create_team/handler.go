package create_team

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTeamNameTaken      = "команда с таким именем уже существует"
	msgTeamIDTaken        = "команда с таким ID уже существует"
	msgInvalidInput       = "некорректные данные запроса"
	msgAdminOnly          = "операция доступна только администратору"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/teams
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok || !identity.IsAdmin {
		h.logger.Warn("POST /teams - Admin access required")
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	var req models.CreateTeamRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teams - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	team, err := h.service.CreateTeam(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrTeamNameTaken):
			h.logger.Warn("POST /teams - Team name taken: name=%q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgTeamNameTaken)

		case errors.Is(err, directory.ErrTeamIDTaken):
			h.logger.Warn("POST /teams - Team id taken: team_id=%d", req.ID)
			handlers.RespondError(w, http.StatusConflict, msgTeamIDTaken)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /teams - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /teams - Failed to create team: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /teams - Team created successfully: team_id=%d, name=%q", team.ID, team.Name)
	handlers.RespondJSON(w, http.StatusCreated, team)
}
