package bootstrap

import (
	"context"

	"samhotel-api/internal/infra/db"
	"samhotel-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

func NewDatabasePool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := db.NewPool(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// AsDBTX lets repositories depend on the narrow interface instead of the pool.
func AsDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
