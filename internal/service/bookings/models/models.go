package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка встреч
type ListBookingsRequest struct {
	Date     *time.Time `json:"date,omitempty"`     // Фильтр по дате (опционально)
	TeamID   *int64     `json:"teamId,omitempty"`   // Фильтр по команде (опционально)
	RoomID   *int64     `json:"roomId,omitempty"`   // Фильтр по комнате (опционально)
	BookerID *int64     `json:"bookerId,omitempty"` // Фильтр по организатору (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		Date:     r.Date,
		TeamID:   r.TeamID,
		RoomID:   r.RoomID,
		BookerID: r.BookerID,
	}
}

// Response модели

// BookingResponse данные бронирования
type BookingResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	TeamID        int64     `json:"teamId"`
	RoomID        int64     `json:"roomId"`
	BookerID      int64     `json:"bookerId"`
	Date          time.Time `json:"date"`
	StartHour     int       `json:"startHour"`
	EndHour       int       `json:"endHour"`
	DurationHours int       `json:"durationHours"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookingDetailsResponse данные бронирования с именами из справочников
type BookingDetailsResponse struct {
	BookingResponse
	TeamName       string `json:"teamName"`
	RoomName       string `json:"roomName"`
	BookerFullName string `json:"bookerFullName"`
}

// BookingListResponse список встреч
type BookingListResponse struct {
	Bookings []*BookingDetailsResponse `json:"bookings"`
}

// AttendeeUserResponse сотрудник-участник встречи
type AttendeeUserResponse struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	TeamName string `json:"teamName"`
}

// AttendeePartnerResponse внешний участник встречи
type AttendeePartnerResponse struct {
	PartnerID    int64  `json:"partnerId"`
	Name         string `json:"name"`
	Representing string `json:"representing"`
}

// ParticipantsResponse участники встречи
type ParticipantsResponse struct {
	BookingID    int64                      `json:"bookingId"`
	BookingTitle string                     `json:"bookingTitle"`
	Users        []*AttendeeUserResponse    `json:"users"`
	Partners     []*AttendeePartnerResponse `json:"partners"`
}

// Конвертеры domain -> response

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		Title:         b.Title,
		TeamID:        b.TeamID,
		RoomID:        b.RoomID,
		BookerID:      b.BookerID,
		Date:          b.Date,
		StartHour:     b.StartHour,
		EndHour:       b.EndHour,
		DurationHours: b.DurationHours,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingDetails конвертирует domain.BookingDetails в BookingDetailsResponse
func FromDomainBookingDetails(d *domain.BookingDetails) *BookingDetailsResponse {
	return &BookingDetailsResponse{
		BookingResponse: *FromDomainBooking(&d.Booking),
		TeamName:        d.TeamName,
		RoomName:        d.RoomName,
		BookerFullName:  d.BookerFullName,
	}
}

// FromDomainBookingList конвертирует список domain.BookingDetails
func FromDomainBookingList(list []*domain.BookingDetails) *BookingListResponse {
	bookings := make([]*BookingDetailsResponse, 0, len(list))
	for _, d := range list {
		bookings = append(bookings, FromDomainBookingDetails(d))
	}
	return &BookingListResponse{Bookings: bookings}
}

// FromDomainAttendees конвертирует списки участников
func FromDomainAttendees(booking *domain.Booking, users []domain.AttendeeUser, partners []domain.AttendeePartner) *ParticipantsResponse {
	resp := &ParticipantsResponse{
		BookingID:    booking.ID,
		BookingTitle: booking.Title,
		Users:        make([]*AttendeeUserResponse, 0, len(users)),
		Partners:     make([]*AttendeePartnerResponse, 0, len(partners)),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, &AttendeeUserResponse{
			UserID:   u.UserID,
			FullName: u.FullName,
			TeamName: u.TeamName,
		})
	}
	for _, p := range partners {
		resp.Partners = append(resp.Partners, &AttendeePartnerResponse{
			PartnerID:    p.PartnerID,
			Name:         p.Name,
			Representing: p.Representing,
		})
	}
	return resp
}
