package repository

import (
	"context"
	"time"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/pgconv"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) shared.BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, room_id, client_name, client_email, client_phone,
			check_in, check_out, adults, children, meal_plan,
			total_cents, paid_cents
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.RoomID()),
		b.Client().Name(),
		b.Client().Email(),
		pgconv.StringPtrToPgtype(b.Client().Phone()),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Guests().Adults(),
		b.Guests().Children(),
		b.MealPlan().String(),
		b.TotalAmount().Cents(),
		b.AmountPaid().Cents(),
	)
	return infra.WrapRepoErr(err)
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(errNoRowsAffected, infra.NotFoundError)
	}
	return nil
}

// HasOverlap uses the half-open rule: an existing stay conflicts when it
// starts before the candidate checkout and ends after the candidate check-in.
func (r *BookingRepository) HasOverlap(ctx context.Context, roomID uuid.UUID, stay booking.Stay) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND check_in < $3 AND check_out > $2
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(roomID),
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(err)
	}
	return exists, nil
}

func (r *BookingRepository) HasActiveBookings(ctx context.Context, roomID uuid.UUID, today time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND check_out >= $2
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(roomID),
		pgconv.DateToPgtype(today),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(err)
	}
	return exists, nil
}

// RecomputeRoomAvailability derives rooms.available from the booking table.
// Nothing else writes that column.
func (r *BookingRepository) RecomputeRoomAvailability(ctx context.Context, roomID uuid.UUID, today time.Time) error {
	const query = `
		UPDATE rooms SET
			available = NOT EXISTS (
				SELECT 1 FROM bookings
				WHERE room_id = $1 AND check_out >= $2
			),
			updated_at = now()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(roomID), pgconv.DateToPgtype(today))
	return infra.WrapRepoErr(err)
}

func (r *BookingRepository) SetPaymentResponse(ctx context.Context, id uuid.UUID, payload []byte) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET payment_response = $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(id), payload,
	)
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(errNoRowsAffected, infra.NotFoundError)
	}
	return nil
}
