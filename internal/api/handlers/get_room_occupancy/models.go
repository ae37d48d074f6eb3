package get_room_occupancy

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getRoomOccupancy "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_room_occupancy"
)

// HourSlotResponse часовая ячейка сетки
type HourSlotResponse struct {
	Hour     int  `json:"hour"`
	Occupied bool `json:"occupied"`
}

// RoomOccupancyResponse строка сетки по одной комнате
type RoomOccupancyResponse struct {
	RoomID      int64              `json:"roomId"`
	RoomName    string             `json:"roomName"`
	Capacity    int                `json:"capacity"`
	Telephone   *string            `json:"telephone,omitempty"`
	Projector   *bool              `json:"projector,omitempty"`
	Whiteboard  *bool              `json:"whiteboard,omitempty"`
	CostPerHour int64              `json:"costPerHour"`
	Slots       []HourSlotResponse `json:"slots"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	Date  string                  `json:"date"`
	Rooms []RoomOccupancyResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomOccupancy.Response) *OccupancyResponse {
	rooms := make([]RoomOccupancyResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		slots := make([]HourSlotResponse, 0, len(room.Slots))
		for _, slot := range room.Slots {
			slots = append(slots, HourSlotResponse{Hour: slot.Hour, Occupied: slot.Occupied})
		}
		rooms = append(rooms, RoomOccupancyResponse{
			RoomID:      room.RoomID,
			RoomName:    room.RoomName,
			Capacity:    room.Capacity,
			Telephone:   room.Telephone,
			Projector:   room.Projector,
			Whiteboard:  room.Whiteboard,
			CostPerHour: room.CostPerHour,
			Slots:       slots,
		})
	}

	return &OccupancyResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Rooms: rooms,
	}
}
