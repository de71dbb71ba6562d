//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/pkg/clock"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingRepo struct {
	overlap    bool
	created    []*booking.Booking
	deleted    []uuid.UUID
	recomputed []uuid.UUID
}

func (s *stubBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	s.created = append(s.created, b)
	return nil
}

func (s *stubBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubBookingRepo) HasOverlap(context.Context, uuid.UUID, booking.Stay) (bool, error) {
	return s.overlap, nil
}

func (s *stubBookingRepo) HasActiveBookings(context.Context, uuid.UUID, time.Time) (bool, error) {
	return false, nil
}

func (s *stubBookingRepo) RecomputeRoomAvailability(_ context.Context, roomID uuid.UUID, _ time.Time) error {
	s.recomputed = append(s.recomputed, roomID)
	return nil
}

func (s *stubBookingRepo) SetPaymentResponse(context.Context, uuid.UUID, []byte) error {
	return nil
}

type stubReads struct {
	room    *shared.RoomSnapshot
	booking *shared.BookingSnapshot
}

func notFound() error {
	return infra.WrapRepoErr(pgx.ErrNoRows)
}

func (s *stubReads) RoomByID(context.Context, uuid.UUID) (*shared.RoomSnapshot, error) {
	if s.room == nil {
		return nil, notFound()
	}
	return s.room, nil
}

func (s *stubReads) BookingByID(context.Context, uuid.UUID) (*shared.BookingSnapshot, error) {
	if s.booking == nil {
		return nil, notFound()
	}
	return s.booking, nil
}

func (s *stubReads) UserByEmail(context.Context, string) (*shared.UserSnapshot, error) {
	return nil, notFound()
}

func (s *stubReads) UserByID(context.Context, uuid.UUID) (*shared.UserSnapshot, error) {
	return nil, notFound()
}

func (s *stubReads) ProductByID(context.Context, uuid.UUID) (*shared.ProductSnapshot, error) {
	return nil, notFound()
}

func (s *stubReads) CategoryByID(context.Context, uuid.UUID) (*shared.CategorySnapshot, error) {
	return nil, notFound()
}

type stubTx struct {
	bookings *stubBookingRepo
	reads    *stubReads
}

func (t *stubTx) Bookings() shared.BookingRepository    { return t.bookings }
func (t *stubTx) Rooms() shared.RoomRepository          { return nil }
func (t *stubTx) Users() shared.UserRepository          { return nil }
func (t *stubTx) Inventory() shared.InventoryRepository { return nil }
func (t *stubTx) Reads() shared.CommandReads            { return t.reads }

type stubUoW struct {
	tx                *stubTx
	serializableCalls int
}

func (u *stubUoW) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUoW) WithinSerializable(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	u.serializableCalls++
	return fn(ctx, u.tx)
}

func (u *stubUoW) Reads() shared.CommandReads { return u.tx.reads }

type spyNotifier struct {
	calls int
}

func (s *spyNotifier) BookingCreated(*booking.Booking, string) { s.calls++ }

func newFixture(roomRateCents int64, overlap bool) (*stubUoW, *spyNotifier, commands.BookingCommands, uuid.UUID) {
	roomID := uuid.New()
	uow := &stubUoW{tx: &stubTx{
		bookings: &stubBookingRepo{overlap: overlap},
		reads: &stubReads{
			room: &shared.RoomSnapshot{ID: roomID, Name: "Deluxe Suite", RateCents: roomRateCents, Available: true},
		},
	}}
	notifier := &spyNotifier{}
	clk := clock.NewMockClock(time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	return uow, notifier, commands.NewBookingCommands(uow, notifier, clk), roomID
}

func validInput(roomID uuid.UUID) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomID:      roomID,
		ClientName:  "Alice",
		ClientEmail: "alice@example.com",
		CheckIn:     time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Adults:      1,
		MealPlan:    "none",
		AmountPaid:  "200.00",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("computes the total and persists in a serializable transaction", func(t *testing.T) {
		uow, notifier, cmds, roomID := newFixture(10000, false)

		view, err := cmds.Create(context.Background(), validInput(roomID))
		require.NoError(t, err)

		assert.Equal(t, "200.00", view.TotalAmount)
		assert.Equal(t, "Paid", view.PaymentStatus)
		assert.Equal(t, "Deluxe Suite", view.RoomName)
		assert.Equal(t, 1, uow.serializableCalls)
		require.Len(t, uow.tx.bookings.created, 1)
		assert.Equal(t, []uuid.UUID{roomID}, uow.tx.bookings.recomputed)
		assert.Equal(t, 1, notifier.calls)
	})

	t.Run("rejects overlapping dates without persisting", func(t *testing.T) {
		uow, notifier, cmds, roomID := newFixture(10000, true)

		_, err := cmds.Create(context.Background(), validInput(roomID))
		assert.ErrorIs(t, err, commands.ErrDatesAlreadyBooked)
		assert.Empty(t, uow.tx.bookings.created)
		assert.Zero(t, notifier.calls)
	})

	t.Run("unknown room", func(t *testing.T) {
		uow, _, cmds, roomID := newFixture(10000, false)
		uow.tx.reads.room = nil

		_, err := cmds.Create(context.Background(), validInput(roomID))
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("payment mismatch carries both amounts", func(t *testing.T) {
		_, _, cmds, roomID := newFixture(10000, false)

		in := validInput(roomID)
		in.AmountPaid = "150.00"
		_, err := cmds.Create(context.Background(), in)

		var mismatch *booking.PaymentMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "200.00", mismatch.Expected.String())
		assert.Equal(t, "150.00", mismatch.Got.String())
	})

	t.Run("invalid date range is a validation error", func(t *testing.T) {
		uow, _, cmds, roomID := newFixture(10000, false)

		in := validInput(roomID)
		in.CheckOut = in.CheckIn
		_, err := cmds.Create(context.Background(), in)

		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
		assert.Zero(t, uow.serializableCalls)
	})

	t.Run("malformed amount is a validation error", func(t *testing.T) {
		_, _, cmds, roomID := newFixture(10000, false)

		in := validInput(roomID)
		in.AmountPaid = "two hundred"
		_, err := cmds.Create(context.Background(), in)

		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, booking.ErrInvalidAmount)
	})

	t.Run("meal plan changes the expected total", func(t *testing.T) {
		_, _, cmds, roomID := newFixture(10000, false)

		in := validInput(roomID)
		in.MealPlan = "full_board"
		in.AmountPaid = "280.00"
		view, err := cmds.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "280.00", view.TotalAmount)
	})
}

func TestDeleteBooking(t *testing.T) {
	bookingID := uuid.New()
	roomID := uuid.New()

	snapshot := func(in, out time.Time) *shared.BookingSnapshot {
		return &shared.BookingSnapshot{
			ID:       bookingID,
			RoomID:   roomID,
			CheckIn:  in,
			CheckOut: out,
		}
	}

	t.Run("future stay is cancelled and availability recomputed", func(t *testing.T) {
		uow, _, cmds, _ := newFixture(10000, false)
		uow.tx.reads.booking = snapshot(
			time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		)

		require.NoError(t, cmds.Delete(context.Background(), bookingID))
		assert.Equal(t, []uuid.UUID{bookingID}, uow.tx.bookings.deleted)
		assert.Equal(t, []uuid.UUID{roomID}, uow.tx.bookings.recomputed)
	})

	t.Run("started stay cannot be cancelled", func(t *testing.T) {
		uow, _, cmds, _ := newFixture(10000, false)
		// MockClock's today is 2026-01-05; the stay began on the 4th.
		uow.tx.reads.booking = snapshot(
			time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		)

		err := cmds.Delete(context.Background(), bookingID)
		assert.ErrorIs(t, err, commands.ErrStayAlreadyStarted)
		assert.Empty(t, uow.tx.bookings.deleted)
	})

	t.Run("stay starting today cannot be cancelled", func(t *testing.T) {
		uow, _, cmds, _ := newFixture(10000, false)
		uow.tx.reads.booking = snapshot(
			time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		)

		err := cmds.Delete(context.Background(), bookingID)
		assert.ErrorIs(t, err, commands.ErrStayAlreadyStarted)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, _, cmds, _ := newFixture(10000, false)

		err := cmds.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
