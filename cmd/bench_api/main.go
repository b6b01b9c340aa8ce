// Package main Motif Bench API
// @title Motif Bench API
// @version 1.0
// @description Read access to motif discovery benchmark archives and mirrored run scores
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/motif-bench/docs"
	"github.com/DjordjeVuckovic/motif-bench/internal/router"
	"github.com/DjordjeVuckovic/motif-bench/internal/server"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/motif-bench/pkg/server"
	"github.com/labstack/echo/v4"
)

const storeInitTimeout = 30 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	checkers := pkgserver.AllHealthChecker{pkgserver.NewDirHealthChecker(cfg.ResultsDir)}

	var routerOpts []router.ResultsRouterOption
	if cfg.SinkConfig != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
		store, err := factory.NewStore(ctx, *cfg.SinkConfig)
		cancel()
		if err != nil {
			slog.Error("Failed to create score store", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		if ps, ok := store.(*pg.ScoreStore); ok {
			checkers = append(checkers, pg.NewHealthChecker(ps.Pool()))
		}
		routerOpts = append(routerOpts, router.WithScoreReader(store))
		slog.Info("Run scores enabled", "store", cfg.SinkConfig.Type)
	} else {
		slog.Info("Run scores disabled, SINK_TYPE is not set")
	}

	s := server.New(sCfg, checkers)
	s.SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Motif Bench API is running")
	})

	router.NewResultsRouter(s.Echo, cfg.ResultsDir, routerOpts...).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
