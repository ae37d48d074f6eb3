package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	costlogRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/costlog"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	costLogRepo     CostLogRepository
	participantRepo ParticipantRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	costLogRepo CostLogRepository,
	participantRepo ParticipantRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		costLogRepo:     costLogRepo,
		participantRepo: participantRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены бронирования
// Отменить можно только встречу строго в будущем: сегодняшние и прошедшие
// встречи неизменяемы. Участники, запись cost log и само бронирование
// удаляются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d", req.BookingID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		uc.logger.Warn("CancelBooking: invalid booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Отменять можно только встречи строго в будущем
		if !booking.IsFuture(now) {
			uc.logger.Warn("CancelBooking: booking id=%d date=%s is not in the future",
				booking.ID, booking.Date.Format(domain.DateFormat))
			return ErrBookingNotFuture
		}

		// 3.3. Удаляем участников встречи
		if err := uc.participantRepo.DeleteByTitle(txCtx, booking.Title); err != nil {
			uc.logger.Error("CancelBooking: failed to delete participants for %q: %v", booking.Title, err)
			return fmt.Errorf("%w: failed to delete participants: %v", ErrInternal, err)
		}

		// 3.4. Удаляем запись cost log
		// Отсутствие записи - нарушение целостности данных, но отмену
		// оно не блокирует: логируем и продолжаем
		if err := uc.costLogRepo.DeleteByTitle(txCtx, booking.Title); err != nil {
			if !errors.Is(err, costlogRepo.ErrCostLogNotFound) {
				uc.logger.Error("CancelBooking: failed to delete cost log for %q: %v", booking.Title, err)
				return fmt.Errorf("%w: failed to delete cost log: %v", ErrInternal, err)
			}
			uc.logger.Warn("CancelBooking: cost log entry for %q not found, data integrity issue", booking.Title)
		}

		// 3.5. Удаляем бронирование
		if err := uc.bookingRepo.DeleteByID(txCtx, booking.ID); err != nil {
			uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d title=%q cancelled", result.ID, result.Title)

	// 4. Формируем ответ
	return &Response{
		ID:        result.ID,
		Title:     result.Title,
		RoomID:    result.RoomID,
		Date:      result.Date,
		StartHour: result.StartHour,
		EndHour:   result.EndHour,
	}, nil
}
