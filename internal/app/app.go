package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/orgball2608/event-poster-api/internal/admin"
	_ "github.com/orgball2608/event-poster-api/internal/migrations"
	"github.com/orgball2608/event-poster-api/internal/photo"
	"github.com/orgball2608/event-poster-api/internal/posters"
	repositories "github.com/orgball2608/event-poster-api/internal/repositories/fx"
	"github.com/orgball2608/event-poster-api/internal/server"
	"github.com/orgball2608/event-poster-api/internal/stats"
	"github.com/orgball2608/event-poster-api/internal/stories"
	"github.com/orgball2608/event-poster-api/internal/uploader"
	"github.com/orgball2608/event-poster-api/pkg/config"
	"github.com/orgball2608/event-poster-api/pkg/logger"
	"github.com/orgball2608/event-poster-api/pkg/pgx"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		admin.New,
		photo.New,
		uploader.New,
		posters.New,
		stories.New,
		stats.New,
		server.New,
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

func migrate(cfg *config.Config, log logger.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	if err := goose.Up(db, filepath.Join(wd, "internal", "migrations")); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Migrations applied")
	return nil
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, srv *server.Server) {
	addr := fmt.Sprintf(":%d", cfg.App.Port)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("Starting server", "addr", addr, "env", cfg.App.Env)
			go func() {
				if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
