package commands

import (
	"context"
	"errors"
	"time"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/pkg/clock"
	"samhotel-api/internal/pkg/errs"
	"samhotel-api/internal/usecase/queries"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrDatesAlreadyBooked = errors.New("dates already booked")
	ErrStayAlreadyStarted = errors.New("stay has already started")
	// ErrValidation marks domain rejections of client input.
	ErrValidation = errors.New("validation failed")
)

type CreateBookingInput struct {
	RoomID      uuid.UUID
	ClientName  string
	ClientEmail string
	ClientPhone *string
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	MealPlan    string
	AmountPaid  string
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier BookingNotifier
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, notifier BookingNotifier, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

// Create validates the request, then runs the conflict check, the insert and
// the availability recompute in one serializable transaction. Two concurrent
// requests for overlapping dates on the same room cannot both commit: the
// loser retries, sees the winner's row and fails the overlap check.
func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error) {
	client, err := booking.NewClient(in.ClientName, in.ClientEmail, in.ClientPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	stay, err := booking.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	guests, err := booking.NewGuests(in.Adults, in.Children)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	plan, err := booking.NewMealPlan(in.MealPlan)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	amountPaid, err := booking.ParseAmount(in.AmountPaid)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var (
		created  *booking.Booking
		roomName string
	)
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomSnap, err := tx.Reads().RoomByID(ctx, in.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrRoomNotFound
			}
			return err
		}

		overlap, err := tx.Bookings().HasOverlap(ctx, in.RoomID, stay)
		if err != nil {
			return err
		}
		if overlap {
			return ErrDatesAlreadyBooked
		}

		b, err := booking.NewBooking(in.RoomID, booking.NewMoney(roomSnap.RateCents), client, stay, guests, plan, amountPaid)
		if err != nil {
			var mismatch *booking.PaymentMismatchError
			if errors.As(err, &mismatch) {
				return err
			}
			return errs.Mark(err, ErrValidation)
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			// The exclusion constraint is the backstop for overlaps the
			// serializable check could not see.
			if infra.IsKind(err, infra.ConflictError) {
				return ErrDatesAlreadyBooked
			}
			return err
		}

		if err := tx.Bookings().RecomputeRoomAvailability(ctx, in.RoomID, c.clock.Today()); err != nil {
			return err
		}

		created = b
		roomName = roomSnap.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifier.BookingCreated(created, roomName)

	return bookingViewOf(created, roomName, c.clock.Now()), nil
}

// Delete cancels a booking that has not started yet and restores the room's
// availability projection in the same transaction.
func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	today := c.clock.Today()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.NotFoundError) {
				return ErrBookingNotFound
			}
			return err
		}

		stay, err := booking.NewStay(snap.CheckIn, snap.CheckOut)
		if err != nil {
			return errs.Wrap(err, "stored booking has invalid dates")
		}
		if stay.StartedBy(today) {
			return ErrStayAlreadyStarted
		}

		if err := tx.Bookings().Delete(ctx, id); err != nil {
			return err
		}
		return tx.Bookings().RecomputeRoomAvailability(ctx, snap.RoomID, today)
	})
}

func bookingViewOf(b *booking.Booking, roomName string, createdAt time.Time) *queries.BookingView {
	if !b.CreatedAt().IsZero() {
		createdAt = b.CreatedAt()
	}
	return &queries.BookingView{
		ID:              b.ID(),
		RoomID:          b.RoomID(),
		RoomName:        roomName,
		ClientName:      b.Client().Name(),
		ClientEmail:     b.Client().Email(),
		ClientPhone:     b.Client().Phone(),
		CheckIn:         b.Stay().CheckIn(),
		CheckOut:        b.Stay().CheckOut(),
		Adults:          b.Guests().Adults(),
		Children:        b.Guests().Children(),
		MealPlan:        b.MealPlan().String(),
		TotalAmount:     b.TotalAmount().String(),
		AmountPaid:      b.AmountPaid().String(),
		PaymentStatus:   b.PaymentStatus(),
		PaymentResponse: b.PaymentResponse(),
		CreatedAt:       createdAt,
	}
}
