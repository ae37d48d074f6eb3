package domain

import "time"

// Booking represents a meeting-room booking
// Title уникален во всей системе и используется как естественный ключ
// для записей участников и cost log
type Booking struct {
	ID       int64
	Title    string
	TeamID   int64
	RoomID   int64
	BookerID int64

	Date          time.Time // дата встречи, время суток обнулено до полуночи
	StartHour     int       // час начала (9-18)
	EndHour       int       // час окончания, хранится производным: StartHour + DurationHours
	DurationHours int       // длительность в часах (1-5)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps returns true if the booking overlaps the half-open interval [startHour, endHour)
// Встык ([9,11) и [11,13)) пересечением не считается
func (b *Booking) Overlaps(startHour, endHour int) bool {
	return startHour < b.EndHour && endHour > b.StartHour
}

// CoversHourBucket returns true if the booking interval contains the midpoint of the hour bucket
// Занятость часа h определяется по средней точке h+0.5
func (b *Booking) CoversHourBucket(hour int) bool {
	mid := float64(hour) + 0.5
	return mid > float64(b.StartHour) && mid < float64(b.EndHour)
}

// IsFuture returns true if the booking date is on a strictly later calendar day than now
func (b *Booking) IsFuture(now time.Time) bool {
	return b.Date.After(TruncateToDay(now))
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID   *int64     // Фильтр по комнате (опционально, если nil - все комнаты)
	Date     *time.Time // Фильтр по дате (опционально)
	TeamID   *int64     // Фильтр по команде (опционально)
	BookerID *int64     // Фильтр по организатору (опционально)
}

// BookingDetails бронирование с именами связанных сущностей
// Используется read-моделью списка встреч, чтобы не ходить за каждым именем отдельно
type BookingDetails struct {
	Booking
	TeamName       string
	RoomName       string
	BookerFullName string
}
