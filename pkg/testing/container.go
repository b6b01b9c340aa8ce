package testing

import (
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go"
)

// imageOr returns the image named by the env variable key, or fallback.
func imageOr(key, fallback string) string {
	if img := os.Getenv(key); img != "" {
		return img
	}
	return fallback
}

func terminateOnCleanup(tb testing.TB, name string, c testcontainers.Container) {
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			tb.Logf("failed to terminate %s container: %v", name, err)
		}
	})
}
