package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage/es"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage/pg"
	"github.com/DjordjeVuckovic/motif-bench/pkg/utils"
)

type SinkConfig struct {
	storage.Type
	Pg *pg.PoolConfig
	Es *es.ClientConfig
}

// LoadEnv reads the sink settings. An unset SINK_TYPE disables mirroring and
// yields a nil config.
func LoadEnv() (*SinkConfig, error) {
	sinkType := storage.Type(os.Getenv("SINK_TYPE"))
	if sinkType == "" {
		return nil, nil
	}
	if sinkType != storage.ES && sinkType != storage.PG && sinkType != storage.InMem {
		slog.Error("Invalid SINK_TYPE environment variable value", "value", sinkType)
		return nil, fmt.Errorf(
			"invalid SINK_TYPE environment variable value: %s, expected one of %v",
			sinkType,
			[]storage.Type{storage.ES, storage.PG, storage.InMem})
	}

	cfg := &SinkConfig{Type: sinkType}

	switch sinkType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(strings.Split(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
			APIKey:    os.Getenv("ES_API_KEY"),
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses are missing")
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return cfg, nil
}
