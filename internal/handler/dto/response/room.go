package response

import (
	"time"

	"samhotel-api/internal/usecase/queries"
)

type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rate        string    `json:"rate"`
	Available   bool      `json:"available"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) Room {
	images := v.Images
	if images == nil {
		images = []string{}
	}
	return Room{
		ID:          v.ID.String(),
		Name:        v.Name,
		Description: v.Description,
		Rate:        v.Rate,
		Available:   v.Available,
		Images:      images,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromRoomViews(views []*queries.RoomView) []Room {
	out := make([]Room, 0, len(views))
	for _, v := range views {
		out = append(out, FromRoomView(v))
	}
	return out
}

type RoomCalendar struct {
	RoomID     string   `json:"room_id"`
	RoomName   string   `json:"room_name"`
	BookedDays []string `json:"booked_days"`
}

func FromCalendarView(v *queries.RoomCalendarView) RoomCalendar {
	days := v.BookedDays
	if days == nil {
		days = []string{}
	}
	return RoomCalendar{
		RoomID:     v.RoomID.String(),
		RoomName:   v.RoomName,
		BookedDays: days,
	}
}
