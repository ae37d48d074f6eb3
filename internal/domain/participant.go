package domain

// ParticipantUser links an employee to a booking as an attendee
// Строки участников привязаны к заголовку бронирования, а не к id:
// заголовок неизменяем, операции редактирования бронирования в системе нет
type ParticipantUser struct {
	ID           int64
	BookingTitle string
	UserID       int64
}

// ParticipantPartner links a business partner to a booking as an attendee
type ParticipantPartner struct {
	ID           int64
	BookingTitle string
	PartnerID    int64
}

// AttendeeUser сотрудник-участник встречи с разрешёнными именами
type AttendeeUser struct {
	UserID   int64
	FullName string
	TeamName string
}

// AttendeePartner внешний участник встречи с разрешёнными именами
type AttendeePartner struct {
	PartnerID    int64
	Name         string
	Representing string
}
