package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case для подбора свободных комнат на дату и интервал
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute выполняет use case подбора свободных комнат
// Комната свободна, если ни одно её бронирование на эту дату не
// пересекается с запрошенным полуоткрытым интервалом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: date=%s, start=%d, duration=%d",
		req.Date.Format(domain.DateFormat), req.StartHour, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все бронирования на календарную дату
	date := domain.TruncateToDay(req.Date)
	bookings, err := uc.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get bookings for date=%s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Собираем множество занятых комнат
	occupied := occupiedRoomIDs(req.StartHour, req.StartHour+req.DurationHours, bookings)

	// 4. Получаем все комнаты
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 5. Оставляем только свободные
	available := make([]RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		if _, ok := occupied[room.ID]; ok {
			continue
		}
		available = append(available, RoomInfo{
			ID:          room.ID,
			Name:        room.Name,
			Capacity:    room.Capacity,
			Telephone:   room.Telephone,
			Projector:   room.Projector,
			Whiteboard:  room.Whiteboard,
			CostPerHour: room.CostPerHour,
		})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available", len(available), len(rooms))

	return &Response{Rooms: available}, nil
}
