package create_booking

import "time"

// Request модель запроса на бронирование переговорной
type Request struct {
	Title         string    // уникальный заголовок встречи
	RoomID        int64     // ID комнаты
	Date          time.Time // дата встречи (без времени суток)
	StartHour     int       // час начала (9-18)
	DurationHours int       // длительность в часах (1-5)
	BookerID      int64     // ID организатора; команда берётся из его учётки

	UserParticipantIDs    []int64 // сотрудники-участники (опционально)
	PartnerParticipantIDs []int64 // внешние участники (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	Title         string
	TeamID        int64
	TeamName      string
	RoomID        int64
	RoomName      string
	BookerID      int64
	Date          time.Time
	StartHour     int
	EndHour       int
	DurationHours int
	Cost          int64 // стоимость, зафиксированная в cost log

	CreatedAt time.Time
	UpdatedAt time.Time
}
