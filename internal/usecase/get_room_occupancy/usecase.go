package get_room_occupancy

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case для построения сетки занятости комнат на дату
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

// Execute выполняет use case построения сетки занятости
// Сетка покрывает часы с 9 до 22 для каждой комнаты. Ячейка [h, h+1)
// занята, если её середина попадает внутрь какого-либо бронирования
// комнаты на эту дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomOccupancy: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetRoomOccupancy: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем все бронирования на календарную дату
	date := domain.TruncateToDay(req.Date)
	bookings, err := uc.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetRoomOccupancy: failed to get bookings for date=%s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Группируем бронирования по комнатам
	byRoom := make(map[int64][]*domain.Booking)
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	// 4. Получаем все комнаты
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetRoomOccupancy: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 5. Строим строки сетки
	grid := make([]RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		grid = append(grid, RoomOccupancy{
			RoomID:      room.ID,
			RoomName:    room.Name,
			Capacity:    room.Capacity,
			Telephone:   room.Telephone,
			Projector:   room.Projector,
			Whiteboard:  room.Whiteboard,
			CostPerHour: room.CostPerHour,
			Slots:       buildSlots(byRoom[room.ID]),
		})
	}

	return &Response{Date: date, Rooms: grid}, nil
}

// buildSlots строит часовые ячейки сетки для одной комнаты
func buildSlots(bookings []*domain.Booking) []HourSlot {
	slots := make([]HourSlot, 0, domain.OccupancyBucketCount)

	for hour := domain.OccupancyFirstHour; hour <= domain.OccupancyLastHour; hour++ {
		occupied := false
		for _, b := range bookings {
			if b.CoversHourBucket(hour) {
				occupied = true
				break
			}
		}
		slots = append(slots, HourSlot{Hour: hour, Occupied: occupied})
	}

	return slots
}
