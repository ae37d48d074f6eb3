package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	directoryRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/directory"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для фиксации бронирования переговорной
type UseCase struct {
	bookingRepo     BookingRepository
	costLogRepo     CostLogRepository
	participantRepo ParticipantRepository
	roomRepo        RoomRepository
	directoryRepo   DirectoryRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	costLogRepo CostLogRepository,
	participantRepo ParticipantRepository,
	roomRepo RoomRepository,
	directoryRepo DirectoryRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		costLogRepo:     costLogRepo,
		participantRepo: participantRepo,
		roomRepo:        roomRepo,
		directoryRepo:   directoryRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case фиксации бронирования
// Проверка конфликтов и вставка бронирования, cost log и участников
// выполняются в одной сериализуемой транзакции: либо фиксируется всё,
// либо ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: title=%q, room=%d, date=%s, start=%d, duration=%d, booker=%d",
		req.Title, req.RoomID, req.Date.Format(domain.DateFormat), req.StartHour, req.DurationHours, req.BookerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату и получаем текущее время
	// Дата приводится к календарной до проверки конфликтов: выборка
	// бронирований дня и вставка обязаны использовать один ключ
	date := domain.TruncateToDay(req.Date)
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом (сегодня - допустимо)
	if isDateInPast(date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 4. Получаем организатора
	booker, err := uc.directoryRepo.GetUserByID(ctx, req.BookerID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: booker id=%d not found", req.BookerID)
			return nil, ErrBookerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get booker id=%d: %v", req.BookerID, err)
		return nil, fmt.Errorf("%w: failed to get booker: %v", ErrInternal, err)
	}

	// 5. Получаем команду организатора - её имя фиксируется в cost log
	team, err := uc.directoryRepo.GetTeamByID(ctx, booker.TeamID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrTeamNotFound) {
			uc.logger.Warn("CreateBooking: team id=%d not found", booker.TeamID)
			return nil, ErrTeamNotFound
		}
		uc.logger.Error("CreateBooking: failed to get team id=%d: %v", booker.TeamID, err)
		return nil, fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
	}

	// 6. Получаем комнату - тариф нужен для расчёта стоимости
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Переменные для хранения результата
	var (
		result  *domain.Booking
		costLog *domain.CostLogEntry
	)

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Проверяем уникальность заголовка
		exists, err := uc.bookingRepo.ExistsByTitle(txCtx, req.Title)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check title %q: %v", req.Title, err)
			return fmt.Errorf("%w: failed to check title: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: title %q already taken", req.Title)
			return ErrTitleTaken
		}

		// 7.2. Читаем бронирования комнаты на эту дату с блокировкой строк -
		// конкурентная фиксация того же дня будет ждать или повторится
		dayBookings, err := uc.bookingRepo.GetByRoomAndDate(txCtx, req.RoomID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for room=%d date=%s: %v",
				req.RoomID, date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.3. Ищем пересечение с существующими бронированиями
		if blocker := findConflict(req.StartHour, req.DurationHours, dayBookings); blocker != nil {
			blockerName := fmt.Sprintf("user id=%d", blocker.BookerID)
			if blockerUser, err := uc.directoryRepo.GetUserByID(txCtx, blocker.BookerID); err == nil {
				blockerName = blockerUser.FullName
			}
			uc.logger.Warn("CreateBooking: room=%d date=%s conflict with [%d, %d) booked by %s",
				req.RoomID, date.Format(domain.DateFormat), blocker.StartHour, blocker.EndHour, blockerName)
			return &ConflictError{
				StartHour:  blocker.StartHour,
				EndHour:    blocker.EndHour,
				BookerName: blockerName,
			}
		}

		// 7.4. Создаем бронирование
		booking := &domain.Booking{
			Title:         req.Title,
			TeamID:        team.ID,
			RoomID:        room.ID,
			BookerID:      booker.ID,
			Date:          date,
			StartHour:     req.StartHour,
			EndHour:       req.StartHour + req.DurationHours,
			DurationHours: req.DurationHours,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrTitleTaken) {
				return ErrTitleTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 7.5. Фиксируем стоимость в cost log - имя команды денормализуется
		costLog, err = uc.costLogRepo.Create(txCtx, &domain.CostLogEntry{
			TeamID:       team.ID,
			TeamName:     team.Name,
			BookingTitle: result.Title,
			Date:         result.Date,
			Cost:         room.BookingCost(req.DurationHours),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create cost log entry: %v", err)
			return fmt.Errorf("%w: failed to create cost log entry: %v", ErrInternal, err)
		}

		// 7.6. Привязываем участников встречи
		if err := uc.participantRepo.AddUsers(txCtx, result.Title, req.UserParticipantIDs); err != nil {
			uc.logger.Error("CreateBooking: failed to add user participants: %v", err)
			return fmt.Errorf("%w: failed to add user participants: %v", ErrInternal, err)
		}
		if err := uc.participantRepo.AddPartners(txCtx, result.Title, req.PartnerParticipantIDs); err != nil {
			uc.logger.Error("CreateBooking: failed to add partner participants: %v", err)
			return fmt.Errorf("%w: failed to add partner participants: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d title=%q created, cost=%d",
		result.ID, result.Title, costLog.Cost)

	// 8. Формируем ответ
	return &Response{
		ID:            result.ID,
		Title:         result.Title,
		TeamID:        team.ID,
		TeamName:      team.Name,
		RoomID:        room.ID,
		RoomName:      room.Name,
		BookerID:      booker.ID,
		Date:          result.Date,
		StartHour:     result.StartHour,
		EndHour:       result.EndHour,
		DurationHours: result.DurationHours,
		Cost:          costLog.Cost,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
