package costlog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с cost log
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория cost log
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись cost log
// Вызывается внутри транзакции фиксации бронирования: снимок id и имени
// команды делается в момент бронирования
func (r *Repository) Create(ctx context.Context, entry *domain.CostLogEntry) (*domain.CostLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cost_log").
		Columns(
			"team_id",
			"team_name",
			"booking_title",
			"booking_date",
			"cost",
		).
		Values(
			entry.TeamID,
			entry.TeamName,
			entry.BookingTitle,
			entry.Date,
			entry.Cost,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return entry, nil
}

// DeleteByTitle удаляет запись cost log по заголовку бронирования
// Возвращает ErrCostLogNotFound, если записи нет - вызывающая сторона
// решает, фатально это или нет
func (r *Repository) DeleteByTitle(ctx context.Context, bookingTitle string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cost_log").
		Where(squirrel.Eq{"booking_title": bookingTitle}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByTitle - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByTitle - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByTitle - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCostLogNotFound
	}

	return nil
}

// SumByTeam суммирует затраты по командам за период (обе границы включительно)
// Группировка идёт по денормализованному имени команды: итоги отражают
// стоимость на момент бронирования, даже если команда переименована
// или удалена. Сортировка по имени даёт детерминированный порядок
func (r *Repository) SumByTeam(ctx context.Context, startDate, endDate time.Time) ([]domain.TeamCostTotal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"team_name",
		"SUM(cost)",
	).
		From("cost_log").
		Where(squirrel.GtOrEq{"booking_date": startDate}).
		Where(squirrel.LtOrEq{"booking_date": endDate}).
		GroupBy("team_name").
		OrderBy("team_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SumByTeam - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SumByTeam - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	totals := make([]domain.TeamCostTotal, 0)
	for rows.Next() {
		var total domain.TeamCostTotal
		if err := rows.Scan(&total.TeamName, &total.TotalCost); err != nil {
			return nil, fmt.Errorf("%w: SumByTeam - scan row: %v", ErrScanRow, err)
		}
		totals = append(totals, total)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SumByTeam - rows error: %v", ErrScanRow, err)
	}

	return totals, nil
}
