package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// ParseQuery разбирает query-параметры фильтрации списка встреч
// Поддерживаются date, teamId, roomId, bookerId; все опциональны
func ParseQuery(values url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if raw := values.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		req.Date = &date
	}

	for param, target := range map[string]**int64{
		"teamId":   &req.TeamID,
		"roomId":   &req.RoomID,
		"bookerId": &req.BookerID,
	} {
		raw := values.Get(param)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid %s %q", param, raw)
		}
		*target = &id
	}

	return req, nil
}
