package authservice

import "errors"

var (
	// ErrUserUnknown возвращается, когда учётка пользователя не найдена
	ErrUserUnknown = errors.New("user is unknown to auth service")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
