package directory

import "errors"

var (
	// ErrTeamNotFound возвращается, когда команда не найдена
	ErrTeamNotFound = errors.New("directory.repository: team not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("directory.repository: user not found")

	// ErrPartnerNotFound возвращается, когда бизнес-партнёр не найден
	ErrPartnerNotFound = errors.New("directory.repository: business partner not found")

	// ErrUsernameTaken возвращается, когда имя пользователя уже занято
	ErrUsernameTaken = errors.New("directory.repository: username already taken")

	// ErrTeamNameTaken возвращается, когда имя команды уже занято
	ErrTeamNameTaken = errors.New("directory.repository: team name already taken")

	// ErrTeamIDTaken возвращается, когда команда с таким ID уже заведена
	ErrTeamIDTaken = errors.New("directory.repository: team id already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("directory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("directory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("directory.repository: failed to scan row")
)
