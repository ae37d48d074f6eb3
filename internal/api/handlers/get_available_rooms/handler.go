package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_rooms"
)

const (
	msgInvalidQuery     = "некорректные параметры запроса"
	msgInvalidStartHour = "час начала должен быть от 9 до 18"
	msgInvalidDuration  = "длительность должна быть от 1 до 5 часов"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidStartHour):
			h.logger.Warn("GET /rooms/available - Invalid start hour: %d", req.StartHour)
			handlers.RespondBadRequest(w, msgInvalidStartHour)

		case errors.Is(err, getAvailableRooms.ErrInvalidDuration):
			h.logger.Warn("GET /rooms/available - Invalid duration: %d", req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /rooms/available - Failed to get available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - %d rooms available", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(req, result))
}
