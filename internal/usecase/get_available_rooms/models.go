package get_available_rooms

import "time"

// Request модель запроса на подбор свободных комнат
type Request struct {
	Date          time.Time // дата встречи
	StartHour     int       // час начала (9-18)
	DurationHours int       // длительность в часах (1-5)
}

// RoomInfo данные комнаты в ответе
type RoomInfo struct {
	ID          int64
	Name        string
	Capacity    int
	Telephone   *string
	Projector   *bool
	Whiteboard  *bool
	CostPerHour int64
}

// Response модель ответа со свободными комнатами
type Response struct {
	Rooms []RoomInfo
}
