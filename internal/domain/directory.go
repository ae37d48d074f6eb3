package domain

// Team represents a team that owns users and bookings
// ID назначается извне (номер команды), не автоинкремент
type Team struct {
	ID   int64
	Name string
}

// User represents a registered employee
// Пользователь принадлежит ровно одной команде на всё время жизни учётки
type User struct {
	ID           int64
	Username     string
	FullName     string
	Position     string
	PasswordHash string
	TeamID       int64
}

// BusinessPartner represents an external meeting attendee without an account
type BusinessPartner struct {
	ID           int64
	Name         string
	Representing string // организация, которую представляет партнёр
	Position     string
}
