package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingOverlaps(t *testing.T) {
	booking := &Booking{StartHour: 11, EndHour: 13}

	tests := []struct {
		name      string
		startHour int
		endHour   int
		want      bool
	}{
		{name: "identical interval", startHour: 11, endHour: 13, want: true},
		{name: "overlaps start", startHour: 10, endHour: 12, want: true},
		{name: "overlaps end", startHour: 12, endHour: 14, want: true},
		{name: "contained inside", startHour: 11, endHour: 12, want: true},
		{name: "contains booking", startHour: 9, endHour: 15, want: true},
		{name: "adjacent before is not a conflict", startHour: 9, endHour: 11, want: false},
		{name: "adjacent after is not a conflict", startHour: 13, endHour: 15, want: false},
		{name: "fully before", startHour: 9, endHour: 10, want: false},
		{name: "fully after", startHour: 14, endHour: 16, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.startHour, tt.endHour))
		})
	}
}

func TestBookingCoversHourBucket(t *testing.T) {
	// Бронирование [9, 11) занимает ячейки 9 и 10, но не 11
	booking := &Booking{StartHour: 9, EndHour: 11}

	assert.True(t, booking.CoversHourBucket(9))
	assert.True(t, booking.CoversHourBucket(10))
	assert.False(t, booking.CoversHourBucket(11))
	assert.False(t, booking.CoversHourBucket(8))
}

func TestBookingIsFuture(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	tomorrow := &Booking{Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)}
	today := &Booking{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)}
	yesterday := &Booking{Date: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)}

	assert.True(t, tomorrow.IsFuture(now))
	assert.False(t, today.IsFuture(now))
	assert.False(t, yesterday.IsFuture(now))
}

func TestBookingIsFuture_LocalTimeZone(t *testing.T) {
	// Сравниваются календарные даты: зона, в которой получено "сейчас",
	// не сдвигает границу сегодня/завтра
	msk := time.FixedZone("MSK", 3*60*60)
	lateEvening := time.Date(2026, 9, 15, 23, 30, 0, 0, msk)

	tomorrow := &Booking{Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)}
	today := &Booking{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)}

	assert.True(t, tomorrow.IsFuture(lateEvening))
	assert.False(t, today.IsFuture(lateEvening))
}

func TestTruncateToDay(t *testing.T) {
	midnight := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, midnight, TruncateToDay(time.Date(2026, 9, 16, 15, 45, 30, 0, time.UTC)))
	assert.Equal(t, midnight, TruncateToDay(midnight))

	// Не-UTC вход нормализуется к UTC-полуночи того же календарного дня
	msk := time.FixedZone("MSK", 3*60*60)
	assert.Equal(t, midnight, TruncateToDay(time.Date(2026, 9, 16, 9, 0, 0, 0, msk)))
}

func TestRoomBookingCost(t *testing.T) {
	room := &Room{CostPerHour: 250}

	assert.Equal(t, int64(250), room.BookingCost(1))
	assert.Equal(t, int64(1250), room.BookingCost(5))
}
