package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrTitleTaken возвращается, когда заголовок встречи уже используется
	ErrTitleTaken = errors.New("create_booking: booking title already taken")

	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшнего дня
	// Бронирование на сегодня допустимо
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrInvalidStartHour возвращается, когда час начала вне диапазона 9-18
	ErrInvalidStartHour = errors.New("create_booking: start hour out of range")

	// ErrInvalidDuration возвращается, когда длительность вне диапазона 1-5
	ErrInvalidDuration = errors.New("create_booking: duration out of range")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrTeamNotFound возвращается, когда команда организатора не найдена
	ErrTeamNotFound = errors.New("create_booking: team not found")

	// ErrBookerNotFound возвращается, когда организатор не найден
	ErrBookerNotFound = errors.New("create_booking: booker not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError возвращается, когда запрошенный интервал пересекается
// с существующим бронированием той же комнаты на ту же дату
// Несёт интервал и имя организатора блокирующей встречи для сообщения пользователю
type ConflictError struct {
	StartHour  int
	EndHour    int
	BookerName string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_booking: time from %d to %d is already booked by %s",
		e.StartHour, e.EndHour, e.BookerName)
}
