package delete_team

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory"
)

const (
	msgInvalidTeamID    = "некорректный ID команды"
	msgNotFound         = "команда не найдена"
	msgHasFutureBooking = "у команды есть запланированные встречи"
	msgAdminOnly        = "операция доступна только администратору"
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

// Handle DELETE /api/v1/teams/{teamId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok || !identity.IsAdmin {
		h.logger.Warn("DELETE /teams/{id} - Admin access required")
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	vars := mux.Vars(r)
	teamID, err := strconv.ParseInt(vars["teamId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /teams/{id} - Invalid team ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeamID)
		return
	}

	if err := h.service.DeleteTeam(r.Context(), teamID); err != nil {
		switch {
		case errors.Is(err, directory.ErrTeamNotFound):
			h.logger.Warn("DELETE /teams/{id} - Team not found: team_id=%d", teamID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, directory.ErrTeamHasFutureBookings):
			h.logger.Warn("DELETE /teams/{id} - Team has future bookings: team_id=%d", teamID)
			handlers.RespondError(w, http.StatusConflict, msgHasFutureBooking)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("DELETE /teams/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTeamID)

		default:
			h.logger.Error("DELETE /teams/{id} - Failed to delete team: team_id=%d, error=%v", teamID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /teams/{id} - Team deleted successfully: team_id=%d", teamID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
