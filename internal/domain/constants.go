package domain

// Booking time domain constants
const (
	MinStartHour     = 9  // самое раннее время начала встречи
	MaxStartHour     = 18 // самое позднее время начала встречи
	MinDurationHours = 1
	MaxDurationHours = 5
)

// Occupancy grid window
// Сетка занятости строится по часовым интервалам с 9:00 до 23:00
const (
	OccupancyFirstHour   = 9
	OccupancyLastHour    = 22
	OccupancyBucketCount = OccupancyLastHour - OccupancyFirstHour + 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
