package uow

import (
	"context"
	"time"

	"samhotel-api/internal/infra"
	"samhotel-api/internal/infra/repository"
	"samhotel-api/internal/pkg/errs"
	"samhotel-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxRetries = 3

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{}, fn)
}

func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return repository.NewCommandReads(u.pool)
}

// run retries on serialization failures and deadlocks with a short linear
// backoff; any other error aborts immediately.
func (u *PostgresUoW) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !infra.IsRetryable(err) {
			return err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 10 * time.Millisecond):
		}
	}
	return errs.Wrap(lastErr, "transaction retries exhausted")
}

func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return infra.WrapRepoErr(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, &pgTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(err)
	}
	return nil
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	return repository.NewBookingRepository(t.tx)
}

func (t *pgTx) Rooms() shared.RoomRepository {
	return repository.NewRoomRepository(t.tx)
}

func (t *pgTx) Users() shared.UserRepository {
	return repository.NewUserRepository(t.tx)
}

func (t *pgTx) Inventory() shared.InventoryRepository {
	return repository.NewInventoryRepository(t.tx)
}

func (t *pgTx) Reads() shared.CommandReads {
	return repository.NewCommandReads(t.tx)
}
