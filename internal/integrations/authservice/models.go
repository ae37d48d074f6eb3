package authservice

// Identity модель учётки пользователя из AuthService
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
