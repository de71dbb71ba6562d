package repository

import (
	"context"

	"samhotel-api/internal/domain/room"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/errs"
	"samhotel-api/internal/pkg/pgconv"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRowsAffected = errs.New("no rows affected")

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) shared.RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	const query = `
		INSERT INTO rooms (id, name, description, rate_cents, available, images)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(rm.ID()),
		rm.Name(),
		rm.Description(),
		rm.Rate().Cents(),
		rm.Available(),
		rm.Images(),
	)
	return infra.WrapRepoErr(err)
}

// Update never touches available; that column belongs to the booking
// repository's recompute statement.
func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	const query = `
		UPDATE rooms SET
			name = $2,
			description = $3,
			rate_cents = $4,
			images = $5,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(rm.ID()),
		rm.Name(),
		rm.Description(),
		rm.Rate().Cents(),
		rm.Images(),
	)
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(errNoRowsAffected, infra.NotFoundError)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(errNoRowsAffected, infra.NotFoundError)
	}
	return nil
}
