package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий справочника команд, пользователей и партнёров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTeamByID получает команду по ID
func (r *Repository) GetTeamByID(ctx context.Context, id int64) (*domain.Team, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("teams").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTeamByID - build select query: %v", ErrBuildQuery, err)
	}

	var team domain.Team
	err = executor.QueryRowContext(ctx, query, args...).Scan(&team.ID, &team.Name)
	if err == sql.ErrNoRows {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTeamByID - scan team: %v", ErrScanRow, err)
	}

	return &team, nil
}

// CreateTeam создает команду с внешне назначенным ID
func (r *Repository) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("teams").
		Columns("id", "name").
		Values(team.ID, team.Name).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTeam - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			// ID назначается внешне и тоже уникален: различаем по constraint
			if pqErr.Constraint == "teams_pkey" {
				return nil, ErrTeamIDTaken
			}
			return nil, ErrTeamNameTaken
		}
		return nil, fmt.Errorf("%w: CreateTeam - execute insert: %v", ErrExecQuery, err)
	}

	return team, nil
}

// DeleteTeam удаляет команду
func (r *Repository) DeleteTeam(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "teams", id, ErrTeamNotFound, "DeleteTeam")
}

// GetUserByID получает пользователя по ID
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": id}, "GetUserByID")
}

// GetUserByUsername получает пользователя по имени учётной записи
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"username": username}, "GetUserByUsername")
}

func (r *Repository) getUser(ctx context.Context, cond squirrel.Eq, op string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"username",
		"fullname",
		"position",
		"password_hash",
		"team_id",
	).
		From("users").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var user domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Username,
		&user.FullName,
		&user.Position,
		&user.PasswordHash,
		&user.TeamID,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	return &user, nil
}

// CreateUser создает пользователя
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("username", "fullname", "position", "password_hash", "team_id").
		Values(user.Username, user.FullName, user.Position, user.PasswordHash, user.TeamID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateUser - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: CreateUser - execute insert: %v", ErrExecQuery, err)
	}

	return user, nil
}

// DeleteUser удаляет пользователя
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "users", id, ErrUserNotFound, "DeleteUser")
}

// DeleteUsersByTeam удаляет всех пользователей команды
// Используется при удалении команды: участники удаляются вместе с ней
func (r *Repository) DeleteUsersByTeam(ctx context.Context, teamID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("users").
		Where(squirrel.Eq{"team_id": teamID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteUsersByTeam - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteUsersByTeam - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetPartnerByID получает бизнес-партнёра по ID
func (r *Repository) GetPartnerByID(ctx context.Context, id int64) (*domain.BusinessPartner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "representing", "position").
		From("business_partners").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPartnerByID - build select query: %v", ErrBuildQuery, err)
	}

	var partner domain.BusinessPartner
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&partner.ID,
		&partner.Name,
		&partner.Representing,
		&partner.Position,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPartnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPartnerByID - scan partner: %v", ErrScanRow, err)
	}

	return &partner, nil
}

func (r *Repository) deleteByID(ctx context.Context, table string, id int64, notFound error, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
