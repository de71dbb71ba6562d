package request

import (
	"time"

	"samhotel-api/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

var errBadDate = errs.New("dates must use the YYYY-MM-DD format")

type CreateBooking struct {
	RoomID      string  `json:"room_id" binding:"required,uuid"`
	ClientName  string  `json:"client_name" binding:"required"`
	ClientEmail string  `json:"client_email" binding:"required,email"`
	ClientPhone *string `json:"client_phone"`
	CheckIn     string  `json:"check_in" binding:"required"`
	CheckOut    string  `json:"check_out" binding:"required"`
	Adults      int     `json:"adults" binding:"required,min=1"`
	Children    int     `json:"children" binding:"min=0"`
	MealPlan    string  `json:"meal_plan"`
	AmountPaid  string  `json:"amount_paid" binding:"required"`
}

// Dates parses both date fields, rejecting anything but YYYY-MM-DD.
func (r *CreateBooking) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, errBadDate
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, errBadDate
	}
	return checkIn, checkOut, nil
}
