package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// Service сервис для чтения данных о встречах
type Service struct {
	bookingRepo     BookingRepository
	participantRepo ParticipantRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса встреч
func NewService(
	bookingRepo BookingRepository,
	participantRepo ParticipantRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		participantRepo: participantRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListBookings получает список встреч с гибкой фильтрацией
// Поддерживает фильтрацию по дате, команде, комнате и организатору;
// без фильтров возвращает все встречи в хронологическом порядке
//
// Примеры использования:
// - Все встречи: ListBookings(ctx, &ListBookingsRequest{})
// - Встречи на дату: указать Date
// - Встречи команды: указать TeamID
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: fetching bookings, date=%v, team=%v, room=%v, booker=%v",
		req.Date, req.TeamID, req.RoomID, req.BookerID)

	bookings, err := s.bookingRepo.ListWithDetails(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetParticipants получает участников встречи
// Участники привязаны к заголовку встречи: сотрудники возвращаются
// с именем их команды, внешние партнёры - с представляемой организацией
func (s *Service) GetParticipants(ctx context.Context, bookingID int64) (*models.ParticipantsResponse, error) {
	s.logger.Info("GetParticipants: fetching participants for booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetParticipants: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetParticipants: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetParticipants - repository error: %v", ErrInternal, err)
	}

	users, err := s.participantRepo.ListUserAttendees(ctx, booking.Title)
	if err != nil {
		s.logger.Error("GetParticipants: failed to list user attendees for %q: %v", booking.Title, err)
		return nil, fmt.Errorf("%w: GetParticipants - list user attendees: %v", ErrInternal, err)
	}

	partners, err := s.participantRepo.ListPartnerAttendees(ctx, booking.Title)
	if err != nil {
		s.logger.Error("GetParticipants: failed to list partner attendees for %q: %v", booking.Title, err)
		return nil, fmt.Errorf("%w: GetParticipants - list partner attendees: %v", ErrInternal, err)
	}

	s.logger.Info("GetParticipants: booking id=%d has %d users and %d partners",
		bookingID, len(users), len(partners))
	return models.FromDomainAttendees(booking, users, partners), nil
}
