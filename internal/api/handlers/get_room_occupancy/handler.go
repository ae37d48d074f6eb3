package get_room_occupancy

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getRoomOccupancy "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_room_occupancy"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	useCase GetRoomOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/occupancy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/occupancy - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomOccupancy.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getRoomOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /rooms/occupancy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/occupancy - Failed to build occupancy grid: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/occupancy - Grid built for %d rooms on %s",
		len(result.Rooms), date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
