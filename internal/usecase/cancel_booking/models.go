package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64
}

// Response модель ответа с данными отменённого бронирования
type Response struct {
	ID        int64
	Title     string
	RoomID    int64
	Date      time.Time
	StartHour int
	EndHour   int
}
