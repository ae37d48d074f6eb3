package get_available_rooms

import "errors"

var (
	// ErrInvalidStartHour возвращается, когда час начала вне диапазона 9-18
	ErrInvalidStartHour = errors.New("get_available_rooms: start hour out of range")

	// ErrInvalidDuration возвращается, когда длительность вне диапазона 1-5
	ErrInvalidDuration = errors.New("get_available_rooms: duration out of range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_rooms: internal error")
)
