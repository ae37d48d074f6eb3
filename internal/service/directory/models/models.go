package models

import "github.com/m04kA/SMC-RoomBookingService/internal/domain"

// Request модели

// RegisterUserRequest запрос на регистрацию пользователя
// Если команда с таким ID ещё не заведена, она создаётся вместе с пользователем
type RegisterUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Position string `json:"position"`
	Password string `json:"password"`
	TeamID   int64  `json:"teamId"`
	TeamName string `json:"teamName"`
}

// CreateTeamRequest запрос на создание команды
type CreateTeamRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Response модели

// UserResponse данные пользователя (без хэша пароля)
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Position string `json:"position"`
	TeamID   int64  `json:"teamId"`
}

// TeamResponse данные команды
type TeamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Конвертеры domain -> response

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Position: u.Position,
		TeamID:   u.TeamID,
	}
}

// FromDomainTeam конвертирует domain.Team в TeamResponse
func FromDomainTeam(t *domain.Team) *TeamResponse {
	return &TeamResponse{
		ID:   t.ID,
		Name: t.Name,
	}
}
