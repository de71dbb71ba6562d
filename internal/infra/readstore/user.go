package readstore

import (
	"context"

	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/pgconv"
	"samhotel-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) queries.UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, email, role, second_name, phone_number, last_login, created_at
		FROM users WHERE id = $1`

	var (
		pgID      pgtype.UUID
		lastLogin pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		view      queries.UserView
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&pgID, &view.Email, &view.Role, &view.SecondName, &view.PhoneNumber, &lastLogin, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr(err)
	}

	view.ID = uuid.UUID(pgID.Bytes)
	if lastLogin.Valid {
		t := lastLogin.Time
		view.LastLogin = &t
	}
	view.CreatedAt = createdAt.Time
	return &view, nil
}
