package get_team_costs

import "time"

// Request модель запроса агрегации расходов по командам
// Обе границы периода включительны
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// TeamCost суммарные расходы одной команды за период
type TeamCost struct {
	TeamName  string
	TotalCost int64
}

// Response модель ответа с расходами команд, отсортированными по имени
type Response struct {
	StartDate time.Time
	EndDate   time.Time
	Teams     []TeamCost
}
