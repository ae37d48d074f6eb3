package register_user

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
	msgUsernameTaken      = "имя учётной записи уже занято"
	msgTeamNameTaken      = "команда с таким именем уже существует"
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Регистрация доступна только администратору
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok || !identity.IsAdmin {
		h.logger.Warn("POST /users - Admin access required")
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	var req models.RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.RegisterUser(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrUsernameTaken):
			h.logger.Warn("POST /users - Username taken: username=%q", req.Username)
			handlers.RespondError(w, http.StatusConflict, msgUsernameTaken)

		case errors.Is(err, directory.ErrTeamNameTaken):
			h.logger.Warn("POST /users - Team name taken: team_name=%q", req.TeamName)
			handlers.RespondError(w, http.StatusConflict, msgTeamNameTaken)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /users - Failed to register user: username=%q, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User registered successfully: user_id=%d, username=%q", user.ID, user.Username)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
