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

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) queries.RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

const roomViewColumns = `id, name, description, rate_cents, available, images, created_at, updated_at`

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query := `SELECT ` + roomViewColumns + ` FROM rooms WHERE id = $1`

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
	return scanRoomView(rows)
}

func (s *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	query := `SELECT ` + roomViewColumns + ` FROM rooms ORDER BY created_at ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}
	defer rows.Close()

	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		view, err := scanRoomView(rows)
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

func scanRoomView(rows pgx.Rows) (*queries.RoomView, error) {
	var (
		pgID                 pgtype.UUID
		rateCents            int64
		createdAt, updatedAt pgtype.Timestamptz
		view                 queries.RoomView
	)
	err := rows.Scan(&pgID, &view.Name, &view.Description, &rateCents,
		&view.Available, &view.Images, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}

	view.ID = uuid.UUID(pgID.Bytes)
	view.Rate = booking.NewMoney(rateCents).String()
	view.CreatedAt = createdAt.Time
	view.UpdatedAt = updatedAt.Time
	return &view, nil
}
