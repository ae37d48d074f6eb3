package get_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	gotDate  time.Time
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	f.gotDate = date
	return f.bookings, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testRooms() []*domain.Room {
	return []*domain.Room{
		{ID: 1, Name: "Переговорная 1", Capacity: 4, CostPerHour: 100},
		{ID: 2, Name: "Переговорная 2", Capacity: 8, CostPerHour: 250},
		{ID: 3, Name: "Переговорная 3", Capacity: 12, CostPerHour: 400},
	}
}

func testRequest() *Request {
	return &Request{
		Date:          time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartHour:     11,
		DurationHours: 2,
	}
}

func TestExecute_ExcludesOccupiedRooms(t *testing.T) {
	// Комната 1 занята пересекающимся бронированием, комната 2 - встык
	bookingRepository := &fakeBookingRepo{bookings: []*domain.Booking{
		{RoomID: 1, StartHour: 12, EndHour: 14},
		{RoomID: 2, StartHour: 9, EndHour: 11},
	}}
	uc := NewUseCase(bookingRepository, &fakeRoomRepo{rooms: testRooms()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, int64(2), resp.Rooms[0].ID)
	assert.Equal(t, int64(3), resp.Rooms[1].ID)
}

func TestExecute_AllRoomsFree(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{rooms: testRooms()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 3)
}

func TestExecute_DateIsNormalizedToMidnight(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakeRoomRepo{rooms: testRooms()}, noopLogger{})

	req := testRequest()
	req.Date = time.Date(2026, 9, 16, 15, 45, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Бронирования хранятся с датой-полуночью: выборка идёт по тому же ключу
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), repo.gotDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{rooms: testRooms()}, noopLogger{})

	t.Run("start hour out of range", func(t *testing.T) {
		req := testRequest()
		req.StartHour = 19
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidStartHour)
	})

	t.Run("duration out of range", func(t *testing.T) {
		req := testRequest()
		req.DurationHours = 6
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("missing date", func(t *testing.T) {
		req := testRequest()
		req.Date = time.Time{}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
