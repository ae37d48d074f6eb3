package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Title                 string  `json:"title"`
	RoomID                int64   `json:"roomId"`
	Date                  string  `json:"date"` // "2026-09-15"
	StartHour             int     `json:"startHour"`
	DurationHours         int     `json:"durationHours"`
	UserParticipantIDs    []int64 `json:"userParticipantIds,omitempty"`
	PartnerParticipantIDs []int64 `json:"partnerParticipantIds,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	TeamID        int64  `json:"teamId"`
	TeamName      string `json:"teamName"`
	RoomID        int64  `json:"roomId"`
	RoomName      string `json:"roomName"`
	BookerID      int64  `json:"bookerId"`
	Date          string `json:"date"`
	StartHour     int    `json:"startHour"`
	EndHour       int    `json:"endHour"`
	DurationHours int    `json:"durationHours"`
	Cost          int64  `json:"cost"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(bookerID int64) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Title:                 r.Title,
		RoomID:                r.RoomID,
		Date:                  date,
		StartHour:             r.StartHour,
		DurationHours:         r.DurationHours,
		BookerID:              bookerID,
		UserParticipantIDs:    r.UserParticipantIDs,
		PartnerParticipantIDs: r.PartnerParticipantIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Title:         resp.Title,
		TeamID:        resp.TeamID,
		TeamName:      resp.TeamName,
		RoomID:        resp.RoomID,
		RoomName:      resp.RoomName,
		BookerID:      resp.BookerID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartHour:     resp.StartHour,
		EndHour:       resp.EndHour,
		DurationHours: resp.DurationHours,
		Cost:          resp.Cost,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
