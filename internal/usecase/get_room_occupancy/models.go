package get_room_occupancy

import "time"

// Request модель запроса сетки занятости
type Request struct {
	Date time.Time // дата, на которую строится сетка
}

// HourSlot часовая ячейка сетки занятости
type HourSlot struct {
	Hour     int  // час начала ячейки [Hour, Hour+1)
	Occupied bool // занята ли ячейка хотя бы одним бронированием
}

// RoomOccupancy строка сетки: комната и её часовые ячейки
type RoomOccupancy struct {
	RoomID      int64
	RoomName    string
	Capacity    int
	Telephone   *string
	Projector   *bool
	Whiteboard  *bool
	CostPerHour int64
	Slots       []HourSlot
}

// Response модель ответа с сеткой занятости на дату
type Response struct {
	Date  time.Time
	Rooms []RoomOccupancy
}
