package participant

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с участниками встреч
// Строки участников привязаны к заголовку бронирования (он неизменяем)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория участников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// AddUsers добавляет сотрудников-участников к бронированию
// Вызывается внутри транзакции фиксации бронирования
func (r *Repository) AddUsers(ctx context.Context, bookingTitle string, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("participants_user").
		Columns("booking_title", "user_id")
	for _, userID := range userIDs {
		insertBuilder = insertBuilder.Values(bookingTitle, userID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddUsers - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddUsers - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// AddPartners добавляет внешних участников к бронированию
func (r *Repository) AddPartners(ctx context.Context, bookingTitle string, partnerIDs []int64) error {
	if len(partnerIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("participants_partner").
		Columns("booking_title", "partner_id")
	for _, partnerID := range partnerIDs {
		insertBuilder = insertBuilder.Values(bookingTitle, partnerID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddPartners - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddPartners - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByTitle удаляет всех участников бронирования (обе таблицы)
// Отсутствие строк не считается ошибкой: у встречи могло не быть участников
func (r *Repository) DeleteByTitle(ctx context.Context, bookingTitle string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, table := range []string{"participants_user", "participants_partner"} {
		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"booking_title": bookingTitle}).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: DeleteByTitle - build delete query for %s: %v", ErrBuildQuery, table, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: DeleteByTitle - execute delete for %s: %v", ErrExecQuery, table, err)
		}
	}

	return nil
}

// CountByTitle возвращает количество строк участников обоих видов
// Используется тестами целостности и проверками отмены
func (r *Repository) CountByTitle(ctx context.Context, bookingTitle string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	total := 0
	for _, table := range []string{"participants_user", "participants_partner"} {
		query, args, err := psqlbuilder.Select("COUNT(*)").
			From(table).
			Where(squirrel.Eq{"booking_title": bookingTitle}).
			ToSql()

		if err != nil {
			return 0, fmt.Errorf("%w: CountByTitle - build select query for %s: %v", ErrBuildQuery, table, err)
		}

		var count int
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
			return 0, fmt.Errorf("%w: CountByTitle - scan count for %s: %v", ErrScanRow, table, err)
		}
		total += count
	}

	return total, nil
}

// ListUserAttendees получает сотрудников-участников встречи с именем и командой
func (r *Repository) ListUserAttendees(ctx context.Context, bookingTitle string) ([]domain.AttendeeUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"u.id",
		"u.fullname",
		"t.name",
	).
		From("participants_user p").
		Join("users u ON u.id = p.user_id").
		Join("teams t ON t.id = u.team_id").
		Where(squirrel.Eq{"p.booking_title": bookingTitle}).
		OrderBy("p.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUserAttendees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUserAttendees - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attendees := make([]domain.AttendeeUser, 0)
	for rows.Next() {
		var a domain.AttendeeUser
		if err := rows.Scan(&a.UserID, &a.FullName, &a.TeamName); err != nil {
			return nil, fmt.Errorf("%w: ListUserAttendees - scan row: %v", ErrScanRow, err)
		}
		attendees = append(attendees, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUserAttendees - rows error: %v", ErrScanRow, err)
	}

	return attendees, nil
}

// ListPartnerAttendees получает внешних участников встречи с именем и организацией
func (r *Repository) ListPartnerAttendees(ctx context.Context, bookingTitle string) ([]domain.AttendeePartner, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"bp.id",
		"bp.name",
		"bp.representing",
	).
		From("participants_partner p").
		Join("business_partners bp ON bp.id = p.partner_id").
		Where(squirrel.Eq{"p.booking_title": bookingTitle}).
		OrderBy("p.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPartnerAttendees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPartnerAttendees - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attendees := make([]domain.AttendeePartner, 0)
	for rows.Next() {
		var a domain.AttendeePartner
		if err := rows.Scan(&a.PartnerID, &a.Name, &a.Representing); err != nil {
			return nil, fmt.Errorf("%w: ListPartnerAttendees - scan row: %v", ErrScanRow, err)
		}
		attendees = append(attendees, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPartnerAttendees - rows error: %v", ErrScanRow, err)
	}

	return attendees, nil
}
