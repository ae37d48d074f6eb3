package get_room_occupancy

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

func TestExecute_GridMarksBookedHours(t *testing.T) {
	// Бронирование [9, 11) занимает ячейки 9 и 10
	bookingRepository := &fakeBookingRepo{bookings: []*domain.Booking{
		{RoomID: 1, StartHour: 9, EndHour: 11},
	}}
	roomRepository := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "Переговорная 1", Capacity: 4, CostPerHour: 100},
		{ID: 2, Name: "Переговорная 2", Capacity: 8, CostPerHour: 250},
	}}
	uc := NewUseCase(bookingRepository, roomRepository, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)

	// Сетка покрывает часы с 9 до 22
	booked := resp.Rooms[0]
	require.Len(t, booked.Slots, domain.OccupancyBucketCount)
	assert.Equal(t, domain.OccupancyFirstHour, booked.Slots[0].Hour)
	assert.Equal(t, domain.OccupancyLastHour, booked.Slots[len(booked.Slots)-1].Hour)

	assert.True(t, booked.Slots[0].Occupied)  // 9
	assert.True(t, booked.Slots[1].Occupied)  // 10
	assert.False(t, booked.Slots[2].Occupied) // 11

	// Вторая комната полностью свободна
	for _, slot := range resp.Rooms[1].Slots {
		assert.False(t, slot.Occupied)
	}
}

func TestExecute_DateIsNormalizedToMidnight(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakeRoomRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 16, 15, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Бронирования хранятся с датой-полуночью: выборка идёт по тому же ключу
	midnight := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, repo.gotDate)
	assert.Equal(t, midnight, resp.Date)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
