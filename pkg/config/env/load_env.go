package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file without overriding ones already
// set. The file is ENV_PATH when set, defaultPath otherwise. A missing file is
// only an error when env is "local" or empty.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded .env", "path", envPath)
		return nil
	}
	if (env == "local" || env == "") && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Failed to load environment variables in local mode", "error", err)
		return err
	}
	slog.Debug("Skipping .env ...", "path", envPath, "error", err)
	return nil
}

// GetOr returns the trimmed value of key, or fallback when it is unset or blank.
func GetOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "true" || v == "1" || v == "yes"
}
