package domain

// Room represents a meeting room
// Справочные данные: неизменяемы, используются для проверки конфликтов
// и расчёта стоимости
type Room struct {
	ID          int64
	Name        string
	Capacity    int
	Telephone   *string // внутренний номер, nil если телефона в комнате нет
	Projector   *bool
	Whiteboard  *bool
	CostPerHour int64
}

// HasTelephone returns true if the room has a telephone installed
func (r *Room) HasTelephone() bool {
	return r.Telephone != nil && *r.Telephone != ""
}

// HasProjector returns true if the room has a projector
func (r *Room) HasProjector() bool {
	return r.Projector != nil && *r.Projector
}

// HasWhiteboard returns true if the room has a whiteboard
func (r *Room) HasWhiteboard() bool {
	return r.Whiteboard != nil && *r.Whiteboard
}

// BookingCost returns the cost of booking the room for the given duration
func (r *Room) BookingCost(durationHours int) int64 {
	return r.CostPerHour * int64(durationHours)
}
