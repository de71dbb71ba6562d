package readstore

import (
	"context"

	"samhotel-api/internal/domain/booking"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/pgconv"
	"samhotel-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) queries.BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewColumns = `
	b.id, b.room_id, r.name AS room_name,
	b.client_name, b.client_email, b.client_phone,
	b.check_in, b.check_out, b.adults, b.children, b.meal_plan,
	b.total_cents, b.paid_cents, b.payment_response, b.created_at`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr(err)
		}
		return nil, infra.WrapRepoErr(pgx.ErrNoRows)
	}
	return scanBookingView(rows)
}

func (s *BookingReadStore) List(ctx context.Context, roomID *uuid.UUID) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE ($1::uuid IS NULL OR b.room_id = $1)
		ORDER BY b.check_in ASC, b.created_at ASC`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDPtrToPgtype(roomID))
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (s *BookingReadStore) SearchByEmail(ctx context.Context, email string) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE lower(b.client_email) = lower($1)
		ORDER BY b.check_in ASC, b.created_at ASC`

	rows, err := s.db.Query(ctx, query, email)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	return views, nil
}

func scanBookingView(rows pgx.Rows) (*queries.BookingView, error) {
	var (
		pgID, pgRoomID    pgtype.UUID
		clientPhone       pgtype.Text
		checkIn, checkOut pgtype.Date
		totalCents        int64
		paidCents         int64
		paymentResponse   []byte
		createdAt         pgtype.Timestamptz
		view              queries.BookingView
	)
	err := rows.Scan(
		&pgID, &pgRoomID, &view.RoomName,
		&view.ClientName, &view.ClientEmail, &clientPhone,
		&checkIn, &checkOut, &view.Adults, &view.Children, &view.MealPlan,
		&totalCents, &paidCents, &paymentResponse, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}

	view.ID = uuid.UUID(pgID.Bytes)
	view.RoomID = uuid.UUID(pgRoomID.Bytes)
	view.ClientPhone = pgconv.StringPtrFromPgtype(clientPhone)
	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.TotalAmount = booking.NewMoney(totalCents).String()
	view.AmountPaid = booking.NewMoney(paidCents).String()
	view.PaymentResponse = paymentResponse
	view.CreatedAt = createdAt.Time

	if paidCents == totalCents {
		view.PaymentStatus = "Paid"
	} else {
		view.PaymentStatus = "Pending"
	}
	return &view, nil
}
