package repository

import (
	"context"

	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/pgconv"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the minimal snapshots commands need for their guard
// checks. The read stores carry the full views; these stay deliberately thin.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) shared.CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	const query = `SELECT id, name, rate_cents, available FROM rooms WHERE id = $1`

	var (
		pgID pgtype.UUID
		snap shared.RoomSnapshot
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&pgID, &snap.Name, &snap.RateCents, &snap.Available)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	snap.ID = uuid.UUID(pgID.Bytes)
	return &snap, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `SELECT id, room_id, client_name, check_in, check_out FROM bookings WHERE id = $1`

	var (
		pgID, pgRoomID    pgtype.UUID
		checkIn, checkOut pgtype.Date
		snap              shared.BookingSnapshot
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&pgID, &pgRoomID, &snap.ClientName, &checkIn, &checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	snap.ID = uuid.UUID(pgID.Bytes)
	snap.RoomID = uuid.UUID(pgRoomID.Bytes)
	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	return &snap, nil
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, role, second_name, phone_number, is_active, last_login, created_at
		FROM users WHERE lower(email) = lower($1)`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, password_hash, role, second_name, phone_number, is_active, last_login, created_at
		FROM users WHERE id = $1`

	return r.scanUser(r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CommandReads) scanUser(row rowScanner) (*shared.UserSnapshot, error) {
	var (
		pgID      pgtype.UUID
		lastLogin pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		snap      shared.UserSnapshot
	)
	err := row.Scan(&pgID, &snap.Email, &snap.PasswordHash, &snap.Role,
		&snap.SecondName, &snap.PhoneNumber, &snap.IsActive, &lastLogin, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	snap.ID = uuid.UUID(pgID.Bytes)
	if lastLogin.Valid {
		t := lastLogin.Time
		snap.LastLogin = &t
	}
	snap.CreatedAt = createdAt.Time
	return &snap, nil
}

func (r *CommandReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	const query = `SELECT id, name, selling_cents, stock_quantity FROM products WHERE id = $1`

	var (
		pgID pgtype.UUID
		snap shared.ProductSnapshot
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&pgID, &snap.Name, &snap.SellingCents, &snap.StockQuantity)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	snap.ID = uuid.UUID(pgID.Bytes)
	return &snap, nil
}

func (r *CommandReads) CategoryByID(ctx context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	const query = `SELECT id, name FROM categories WHERE id = $1`

	var (
		pgID pgtype.UUID
		snap shared.CategorySnapshot
	)
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&pgID, &snap.Name)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	snap.ID = uuid.UUID(pgID.Bytes)
	return &snap, nil
}
