package response

import (
	"encoding/json"
	"time"

	"samhotel-api/internal/usecase/queries"
)

type Booking struct {
	ID              string          `json:"id"`
	RoomID          string          `json:"room_id"`
	RoomName        string          `json:"room_name"`
	ClientName      string          `json:"client_name"`
	ClientEmail     string          `json:"client_email"`
	ClientPhone     *string         `json:"client_phone,omitempty"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	MealPlan        string          `json:"meal_plan"`
	TotalAmount     string          `json:"total_amount"`
	AmountPaid      string          `json:"amount_paid"`
	PaymentStatus   string          `json:"payment_status"`
	PaymentResponse json.RawMessage `json:"payment_response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) Booking {
	return Booking{
		ID:              v.ID.String(),
		RoomID:          v.RoomID.String(),
		RoomName:        v.RoomName,
		ClientName:      v.ClientName,
		ClientEmail:     v.ClientEmail,
		ClientPhone:     v.ClientPhone,
		CheckIn:         v.CheckIn.Format("2006-01-02"),
		CheckOut:        v.CheckOut.Format("2006-01-02"),
		Adults:          v.Adults,
		Children:        v.Children,
		MealPlan:        v.MealPlan,
		TotalAmount:     v.TotalAmount,
		AmountPaid:      v.AmountPaid,
		PaymentStatus:   v.PaymentStatus,
		PaymentResponse: v.PaymentResponse,
		CreatedAt:       v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) []Booking {
	out := make([]Booking, 0, len(views))
	for _, v := range views {
		out = append(out, FromBookingView(v))
	}
	return out
}
