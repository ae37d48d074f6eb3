package get_available_rooms

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_rooms"
)

// RoomResponse HTTP модель комнаты
type RoomResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Telephone   *string `json:"telephone,omitempty"`
	Projector   *bool   `json:"projector,omitempty"`
	Whiteboard  *bool   `json:"whiteboard,omitempty"`
	CostPerHour int64   `json:"costPerHour"`
}

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	Date          string         `json:"date"`
	StartHour     int            `json:"startHour"`
	DurationHours int            `json:"durationHours"`
	Rooms         []RoomResponse `json:"rooms"`
}

// ParseQuery разбирает query-параметры подбора свободных комнат
// Обязательны date, startHour и durationHours
func ParseQuery(values url.Values) (*getAvailableRooms.Request, error) {
	date, err := time.Parse(domain.DateFormat, values.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", values.Get("date"), err)
	}

	startHour, err := strconv.Atoi(values.Get("startHour"))
	if err != nil {
		return nil, fmt.Errorf("invalid startHour %q", values.Get("startHour"))
	}

	durationHours, err := strconv.Atoi(values.Get("durationHours"))
	if err != nil {
		return nil, fmt.Errorf("invalid durationHours %q", values.Get("durationHours"))
	}

	return &getAvailableRooms.Request{
		Date:          date,
		StartHour:     startHour,
		DurationHours: durationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *getAvailableRooms.Request, resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]RoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, RoomResponse{
			ID:          room.ID,
			Name:        room.Name,
			Capacity:    room.Capacity,
			Telephone:   room.Telephone,
			Projector:   room.Projector,
			Whiteboard:  room.Whiteboard,
			CostPerHour: room.CostPerHour,
		})
	}

	return &AvailableRoomsResponse{
		Date:          req.Date.Format(domain.DateFormat),
		StartHour:     req.StartHour,
		DurationHours: req.DurationHours,
		Rooms:         rooms,
	}
}
