package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	details   []*domain.BookingDetails
	gotFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) ListWithDetails(_ context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	f.gotFilter = filter
	return f.details, nil
}

type fakeParticipantRepo struct {
	users    []domain.AttendeeUser
	partners []domain.AttendeePartner
}

func (f *fakeParticipantRepo) ListUserAttendees(_ context.Context, _ string) ([]domain.AttendeeUser, error) {
	return f.users, nil
}

func (f *fakeParticipantRepo) ListPartnerAttendees(_ context.Context, _ string) ([]domain.AttendeePartner, error) {
	return f.partners, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeParticipantRepo{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListBookings_FilterIsPassedThrough(t *testing.T) {
	repo := &fakeBookingRepo{details: []*domain.BookingDetails{
		{
			Booking:        domain.Booking{ID: 1, Title: "Standup", StartHour: 9, EndHour: 10},
			TeamName:       "Backend",
			RoomName:       "Переговорная 1",
			BookerFullName: "Анна Осипова",
		},
	}}
	svc := NewService(repo, &fakeParticipantRepo{}, noopLogger{})

	date := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	resp, err := svc.ListBookings(context.Background(), &models.ListBookingsRequest{
		Date:   &date,
		TeamID: ptr.Ptr(int64(3)),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.Date)
	assert.Equal(t, date, *repo.gotFilter.Date)
	require.NotNil(t, repo.gotFilter.TeamID)
	assert.Equal(t, int64(3), *repo.gotFilter.TeamID)

	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Backend", resp.Bookings[0].TeamName)
	assert.Equal(t, "Анна Осипова", resp.Bookings[0].BookerFullName)
}

func TestGetParticipants_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{ID: 5, Title: "Sprint review"}}
	participants := &fakeParticipantRepo{
		users: []domain.AttendeeUser{
			{UserID: 7, FullName: "Анна Осипова", TeamName: "Backend"},
		},
		partners: []domain.AttendeePartner{
			{PartnerID: 21, Name: "Илья Громов", Representing: "ООО Ромашка"},
		},
	}
	svc := NewService(repo, participants, noopLogger{})

	resp, err := svc.GetParticipants(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Sprint review", resp.BookingTitle)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Backend", resp.Users[0].TeamName)
	require.Len(t, resp.Partners, 1)
	assert.Equal(t, "ООО Ромашка", resp.Partners[0].Representing)
}

func TestGetParticipants_BookingNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeParticipantRepo{}, noopLogger{})

	_, err := svc.GetParticipants(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
