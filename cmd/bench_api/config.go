package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/motif-bench/internal/storage/factory"
	"github.com/DjordjeVuckovic/motif-bench/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type BenchApiConfig struct {
	ResultsDir string
	// SinkConfig is nil when no score store is configured.
	SinkConfig *factory.SinkConfig
}

func (as *AppConfig) Load() (*BenchApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/bench_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	sinkCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &BenchApiConfig{
		ResultsDir: env.GetOr("RESULTS_DIR", "results"),
		SinkConfig: sinkCfg,
	}, nil
}
