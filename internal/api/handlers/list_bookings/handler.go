package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
)

const msgInvalidQuery = "некорректные параметры фильтрации"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
