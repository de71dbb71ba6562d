package repository

import (
	"context"
	"time"

	"samhotel-api/internal/domain/user"
	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/pgconv"
	"samhotel-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) shared.UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, role, second_name, phone_number, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.SecondName(),
		u.PhoneNumber(),
		u.IsActive(),
	)
	return infra.WrapRepoErr(err)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(id), pgconv.TimeToPgtype(at),
	)
	return infra.WrapRepoErr(err)
}
