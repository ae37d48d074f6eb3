package delete_user

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
	msgInvalidUserID    = "некорректный ID пользователя"
	msgNotFound         = "пользователь не найден"
	msgHasFutureBooking = "у пользователя есть запланированные встречи"
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

// Handle DELETE /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok || !identity.IsAdmin {
		h.logger.Warn("DELETE /users/{id} - Admin access required")
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, directory.ErrUserNotFound):
			h.logger.Warn("DELETE /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, directory.ErrUserHasFutureBookings):
			h.logger.Warn("DELETE /users/{id} - User has future bookings: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgHasFutureBooking)

		case errors.Is(err, directory.ErrInvalidInput):
			h.logger.Warn("DELETE /users/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("DELETE /users/{id} - Failed to delete user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
