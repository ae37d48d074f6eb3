package get_team_costs

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	getTeamCosts "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_team_costs"
)

const (
	msgInvalidQuery = "некорректные параметры периода, ожидается startDate и endDate в формате YYYY-MM-DD"
	msgInvalidRange = "конец периода раньше начала"
)

type Handler struct {
	useCase GetTeamCostsUseCase
	logger  Logger
}

func NewHandler(useCase GetTeamCostsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/team-costs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/team-costs - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getTeamCosts.ErrInvalidRange):
			h.logger.Warn("GET /reports/team-costs - Invalid range: start=%v, end=%v", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getTeamCosts.ErrInvalidInput):
			h.logger.Warn("GET /reports/team-costs - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /reports/team-costs - Failed to aggregate costs: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/team-costs - Aggregated costs for %d teams", len(result.Teams))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
