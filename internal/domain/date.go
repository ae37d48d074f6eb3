package domain

import "time"

// TruncateToDay обнуляет время суток и приводит дату к UTC
// Бронирования группируются и сравниваются по календарной дате,
// независимо от зоны, в которой дата была получена
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
