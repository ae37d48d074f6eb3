package directory

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type fakeExecutor struct {
	execErr error
}

func (f *fakeExecutor) ExecContext(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
	return nil, f.execErr
}

func (f *fakeExecutor) QueryContext(_ context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeExecutor) QueryRowContext(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	return nil
}

func TestCreateTeam_UniqueViolationMapping(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{name: "duplicate name", constraint: "teams_name_key", wantErr: ErrTeamNameTaken},
		{name: "duplicate id", constraint: "teams_pkey", wantErr: ErrTeamIDTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewRepository(&fakeExecutor{execErr: &pq.Error{
				Code:       pq.ErrorCode(pgUniqueViolation),
				Constraint: tt.constraint,
			}})

			_, err := repo.CreateTeam(context.Background(), &domain.Team{ID: 3, Name: "Backend"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTeam_OtherErrorIsWrapped(t *testing.T) {
	repo := NewRepository(&fakeExecutor{execErr: &pq.Error{Code: "40001"}})

	_, err := repo.CreateTeam(context.Background(), &domain.Team{ID: 3, Name: "Backend"})
	assert.ErrorIs(t, err, ErrExecQuery)
}
