package domain

import "time"

// CostLogEntry represents a denormalized cost record created together with a booking
// Снимок id и имени команды делается в момент бронирования и переживает
// последующее удаление или переименование команды
type CostLogEntry struct {
	ID           int64
	TeamID       int64
	TeamName     string
	BookingTitle string
	Date         time.Time
	Cost         int64
}

// TeamCostTotal результат агрегации затрат по команде за период
type TeamCostTotal struct {
	TeamName  string
	TotalCost int64
}
