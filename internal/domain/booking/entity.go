package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PaymentMismatchError reports both sides of a failed reconciliation so the
// caller can surface an actionable message.
type PaymentMismatchError struct {
	Expected Money
	Got      Money
}

func (e *PaymentMismatchError) Error() string {
	return fmt.Sprintf("payment mismatch: expected %s, got %s", e.Expected, e.Got)
}

// Booking is immutable once created except for the asynchronous
// payment-response payload recorded after the external push.
type Booking struct {
	id              uuid.UUID
	roomID          uuid.UUID
	client          Client
	stay            Stay
	guests          Guests
	mealPlan        MealPlan
	totalAmount     Money
	amountPaid      Money
	paymentResponse json.RawMessage
	createdAt       time.Time
}

// NewBooking builds a committed-ready booking. The total is always recomputed
// here from the room rate; a client-supplied total is never trusted. The paid
// amount must match the computed total exactly.
func NewBooking(
	roomID uuid.UUID,
	roomRate Money,
	client Client,
	stay Stay,
	guests Guests,
	plan MealPlan,
	amountPaid Money,
) (*Booking, error) {
	if !plan.IsValid() {
		return nil, ErrInvalidMealPlan
	}

	total := Quote(roomRate, stay, guests, plan)
	if !amountPaid.Equals(total) {
		return nil, &PaymentMismatchError{Expected: total, Got: amountPaid}
	}

	return &Booking{
		id:          uuid.New(),
		roomID:      roomID,
		client:      client,
		stay:        stay,
		guests:      guests,
		mealPlan:    plan,
		totalAmount: total,
		amountPaid:  amountPaid,
	}, nil
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	client Client,
	stay Stay,
	guests Guests,
	plan MealPlan,
	totalAmount, amountPaid Money,
	paymentResponse json.RawMessage,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		roomID:          roomID,
		client:          client,
		stay:            stay,
		guests:          guests,
		mealPlan:        plan,
		totalAmount:     totalAmount,
		amountPaid:      amountPaid,
		paymentResponse: paymentResponse,
		createdAt:       createdAt,
	}
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) RoomID() uuid.UUID                { return b.roomID }
func (b *Booking) Client() Client                   { return b.client }
func (b *Booking) Stay() Stay                       { return b.stay }
func (b *Booking) Guests() Guests                   { return b.guests }
func (b *Booking) MealPlan() MealPlan               { return b.mealPlan }
func (b *Booking) TotalAmount() Money               { return b.totalAmount }
func (b *Booking) AmountPaid() Money                { return b.amountPaid }
func (b *Booking) PaymentResponse() json.RawMessage { return b.paymentResponse }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }

// PaymentStatus is derived, never stored: a committed booking is always fully
// paid at creation time.
func (b *Booking) PaymentStatus() string {
	if b.amountPaid.Equals(b.totalAmount) {
		return "Paid"
	}
	return "Pending"
}
