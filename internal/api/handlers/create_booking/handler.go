package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTitleTaken         = "встреча с таким названием уже существует"
	msgDateInPast         = "дата встречи уже прошла"
	msgInvalidStartHour   = "час начала должен быть от 9 до 18"
	msgInvalidDuration    = "длительность должна быть от 1 до 5 часов"
	msgRoomNotFound       = "комната не найдена"
	msgTeamNotFound       = "команда не найдена"
	msgBookerNotFound     = "организатор не найден"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	bookerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(bookerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var conflictErr *createBooking.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Conflict: room_id=%d, date=%s, blocked by %s",
				req.RoomID, req.Date, conflictErr.BookerName)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf("время с %d до %d уже занято, бронь оформил(а) %s",
					conflictErr.StartHour, conflictErr.EndHour, conflictErr.BookerName))

		case errors.Is(err, createBooking.ErrTitleTaken):
			h.logger.Warn("POST /bookings - Title taken: title=%q", req.Title)
			handlers.RespondError(w, http.StatusConflict, msgTitleTaken)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidStartHour):
			h.logger.Warn("POST /bookings - Invalid start hour: start_hour=%d", req.StartHour)
			handlers.RespondBadRequest(w, msgInvalidStartHour)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: duration=%d", req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrTeamNotFound):
			h.logger.Warn("POST /bookings - Team not found for booker_id=%d", bookerID)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, createBooking.ErrBookerNotFound):
			h.logger.Warn("POST /bookings - Booker not found: booker_id=%d", bookerID)
			handlers.RespondNotFound(w, msgBookerNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: title=%q, booker_id=%d, error=%v",
				req.Title, bookerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, title=%q, booker_id=%d",
		result.ID, result.Title, bookerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
