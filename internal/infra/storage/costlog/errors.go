package costlog

import "errors"

var (
	// ErrCostLogNotFound возвращается, когда запись cost log не найдена
	ErrCostLogNotFound = errors.New("costlog.repository: cost log entry not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("costlog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("costlog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("costlog.repository: failed to scan row")
)
