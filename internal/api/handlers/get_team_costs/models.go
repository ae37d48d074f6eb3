package get_team_costs

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getTeamCosts "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_team_costs"
)

// TeamCostResponse расходы одной команды
type TeamCostResponse struct {
	TeamName  string `json:"teamName"`
	TotalCost int64  `json:"totalCost"`
}

// TeamCostsResponse HTTP response model
type TeamCostsResponse struct {
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Teams     []TeamCostResponse `json:"teams"`
}

// ParseQuery разбирает query-параметры отчёта по расходам
// Обязательны startDate и endDate, обе границы включительны
func ParseQuery(values url.Values) (*getTeamCosts.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, values.Get("startDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid startDate %q: %w", values.Get("startDate"), err)
	}

	endDate, err := time.Parse(domain.DateFormat, values.Get("endDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid endDate %q: %w", values.Get("endDate"), err)
	}

	return &getTeamCosts.Request{StartDate: startDate, EndDate: endDate}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTeamCosts.Response) *TeamCostsResponse {
	teams := make([]TeamCostResponse, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		teams = append(teams, TeamCostResponse{TeamName: t.TeamName, TotalCost: t.TotalCost})
	}

	return &TeamCostsResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Teams:     teams,
	}
}
