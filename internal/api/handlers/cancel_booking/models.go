package cancel_booking

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	cancelBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/cancel_booking"
)

// CancelledBookingResponse HTTP response model
type CancelledBookingResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	RoomID    int64  `json:"roomId"`
	Date      string `json:"date"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelledBookingResponse {
	return &CancelledBookingResponse{
		ID:        resp.ID,
		Title:     resp.Title,
		RoomID:    resp.RoomID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartHour: resp.StartHour,
		EndHour:   resp.EndHour,
	}
}
