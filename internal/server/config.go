package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/motif-bench/pkg/config/env"
	"github.com/DjordjeVuckovic/motif-bench/pkg/utils"
)

const DefaultPort = "8080"

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
}

// LoadConfig reads PORT, USE_HTTP2 and CORS_ORIGINS (comma separated, "*" when
// empty). The .env file, if any, must already be loaded.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        env.GetOr("PORT", DefaultPort),
		UseHttp2:    env.GetBool("USE_HTTP2"),
		CorsOrigins: utils.RemoveEmptyStrings(strings.Split(env.GetOr("CORS_ORIGINS", ""), ",")),
	}
	if len(cfg.CorsOrigins) == 0 {
		cfg.CorsOrigins = []string{"*"}
	}

	if err := validatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}
	return cfg, nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port %q must be a number", port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", n)
	}
	return nil
}
