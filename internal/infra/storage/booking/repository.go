package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки postgres при нарушении уникального индекса
const pgUniqueViolation = "23505"

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"title",
	"team_id",
	"room_id",
	"booker_id",
	"booking_date",
	"start_hour",
	"end_hour",
	"duration_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её -
// операция фиксации бронирования всегда выполняется внутри
// сериализуемой транзакции вместе с cost log и участниками
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"title",
			"team_id",
			"room_id",
			"booker_id",
			"booking_date",
			"start_hour",
			"end_hour",
			"duration_hours",
		).
		Values(
			booking.Title,
			booking.TeamID,
			booking.RoomID,
			booking.BookerID,
			booking.Date,
			booking.StartHour,
			booking.EndHour,
			booking.DurationHours,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		// Уникальный индекс по title - страховка от гонки на дубликат заголовка
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrTitleTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) - используется
// операцией отмены, чтобы зафиксировать бронирование на время удаления
// зависимых записей
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ExistsByTitle проверяет, занят ли заголовок встречи
func (r *Repository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"title": title}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByTitle - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByTitle - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByRoomAndDate получает бронирования комнаты на дату, по возрастанию времени начала
// Если запрос выполняется внутри транзакции, строки блокируются (FOR UPDATE):
// так операция фиксации бронирования закрывает гонку двух одновременных
// заявок на одну комнату и дату
func (r *Repository) GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_hour ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByDate получает все бронирования на дату по всем комнатам
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("room_id ASC, start_hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListWithDetails получает бронирования с именами команды, комнаты и
// организатора, в хронологическом порядке
// Фильтр применяется по любому сочетанию даты, команды, комнаты и организатора
func (r *Repository) ListWithDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id",
		"b.title",
		"b.team_id",
		"b.room_id",
		"b.booker_id",
		"b.booking_date",
		"b.start_hour",
		"b.end_hour",
		"b.duration_hours",
		"t.name",
		"r.name",
		"u.fullname",
	).
		From("bookings b").
		Join("teams t ON t.id = b.team_id").
		Join("rooms r ON r.id = b.room_id").
		Join("users u ON u.id = b.booker_id").
		OrderBy("b.booking_date ASC, b.start_hour ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.booking_date": *filter.Date})
	}
	if filter.TeamID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.team_id": *filter.TeamID})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.room_id": *filter.RoomID})
	}
	if filter.BookerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.booker_id": *filter.BookerID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		var d domain.BookingDetails
		err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.TeamID,
			&d.RoomID,
			&d.BookerID,
			&d.Date,
			&d.StartHour,
			&d.EndHour,
			&d.DurationHours,
			&d.TeamName,
			&d.RoomName,
			&d.BookerFullName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithDetails - scan row: %v", ErrScanRow, err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithDetails - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}

// HasFutureByTeam проверяет, держит ли команда бронирования строго в будущем
// Используется как охранное условие при удалении команды
func (r *Repository) HasFutureByTeam(ctx context.Context, teamID int64, now time.Time) (bool, error) {
	return r.hasFuture(ctx, squirrel.Eq{"team_id": teamID}, now, "HasFutureByTeam")
}

// HasFutureByUser проверяет, держит ли пользователь бронирования строго в будущем
// Используется как охранное условие при удалении пользователя
func (r *Repository) HasFutureByUser(ctx context.Context, userID int64, now time.Time) (bool, error) {
	return r.hasFuture(ctx, squirrel.Eq{"booker_id": userID}, now, "HasFutureByUser")
}

func (r *Repository) hasFuture(ctx context.Context, cond squirrel.Eq, now time.Time, op string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(cond).
		Where(squirrel.Gt{"booking_date": now}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
	}

	return true, nil
}

// DeleteByID удаляет бронирование
// Вызывается только операцией отмены внутри транзакции вместе с удалением
// участников и cost log
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Title,
		&booking.TeamID,
		&booking.RoomID,
		&booking.BookerID,
		&booking.Date,
		&booking.StartHour,
		&booking.EndHour,
		&booking.DurationHours,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.Title,
			&booking.TeamID,
			&booking.RoomID,
			&booking.BookerID,
			&booking.Date,
			&booking.StartHour,
			&booking.EndHour,
			&booking.DurationHours,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
