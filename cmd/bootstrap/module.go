package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"samhotel-api/cmd/bootstrap/components"
	"samhotel-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Options(
		fx.Provide(
			config.LoadConfig,
			NewDatabasePool,
			AsDBTX,
			NewJWTService,
		),
		components.PersistenceModule,
		components.UsecaseModule,
		components.NotifierModule,
		components.HandlerModule,
		fx.Invoke(func(cfg config.Config) { SetupLogger(cfg.Log) }),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("server listening", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server terminated", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
