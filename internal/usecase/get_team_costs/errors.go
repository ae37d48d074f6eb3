package get_team_costs

import "errors"

var (
	// ErrInvalidRange возвращается, когда конец периода раньше начала
	ErrInvalidRange = errors.New("get_team_costs: end date is before start date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_team_costs: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_team_costs: internal error")
)
