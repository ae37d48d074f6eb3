package directory

import "errors"

var (
	// ErrTeamNotFound возвращается, когда команда не найдена
	ErrTeamNotFound = errors.New("team not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken возвращается, когда имя учётной записи уже занято
	ErrUsernameTaken = errors.New("username already taken")

	// ErrTeamNameTaken возвращается, когда имя команды уже занято
	ErrTeamNameTaken = errors.New("team name already taken")

	// ErrTeamIDTaken возвращается, когда команда с таким ID уже заведена
	ErrTeamIDTaken = errors.New("team id already taken")

	// ErrTeamHasFutureBookings возвращается при попытке удалить команду
	// с запланированными встречами
	ErrTeamHasFutureBookings = errors.New("team has future bookings")

	// ErrUserHasFutureBookings возвращается при попытке удалить пользователя
	// с запланированными встречами
	ErrUserHasFutureBookings = errors.New("user has future bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
