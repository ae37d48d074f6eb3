package get_team_costs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type fakeCostLogRepo struct {
	totals   []domain.TeamCostTotal
	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeCostLogRepo) SumByTeam(_ context.Context, startDate, endDate time.Time) ([]domain.TeamCostTotal, error) {
	f.gotStart = startDate
	f.gotEnd = endDate
	return f.totals, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_AggregatesByTeamName(t *testing.T) {
	repo := &fakeCostLogRepo{totals: []domain.TeamCostTotal{
		{TeamName: "Backend", TotalCost: 1250},
		{TeamName: "Frontend", TotalCost: 400},
	}}
	uc := NewUseCase(repo, noopLogger{})

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{StartDate: start, EndDate: end})
	require.NoError(t, err)

	// Полуночные границы периода доходят до репозитория без сдвига (обе включительны)
	assert.Equal(t, start, repo.gotStart)
	assert.Equal(t, end, repo.gotEnd)

	require.Len(t, resp.Teams, 2)
	assert.Equal(t, TeamCost{TeamName: "Backend", TotalCost: 1250}, resp.Teams[0])
	assert.Equal(t, TeamCost{TeamName: "Frontend", TotalCost: 400}, resp.Teams[1])
}

func TestExecute_BoundsAreNormalizedToMidnight(t *testing.T) {
	repo := &fakeCostLogRepo{}
	uc := NewUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 30, 18, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Cost log хранит календарные даты: границы приводятся к полуночи
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), repo.gotStart)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), repo.gotEnd)
}

func TestExecute_SingleDayRange(t *testing.T) {
	repo := &fakeCostLogRepo{}
	uc := NewUseCase(repo, noopLogger{})

	day := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{StartDate: day, EndDate: day})
	require.NoError(t, err)
	assert.Empty(t, resp.Teams)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeCostLogRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartDate: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_MissingDates(t *testing.T) {
	uc := NewUseCase(&fakeCostLogRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
