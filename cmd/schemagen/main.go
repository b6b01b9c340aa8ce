package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/spec"
	"github.com/DjordjeVuckovic/motif-bench/pkg/schema"
)

func main() {
	outputDir := flag.String("output", "api", "Output directory for generated schemas")
	idBase := flag.String("id-base", "https://schemas.motif-bench.dev", "Base URL of the schema $id")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		slog.Error("Failed to create output directory", "dir", *outputDir, "error", err)
		os.Exit(1)
	}

	out, err := schema.NewGenerator(*idBase).GenerateJSONSchema(spec.BenchSpec{})
	if err != nil {
		slog.Error("Failed to generate schema for BenchSpec", "error", err)
		os.Exit(1)
	}

	path := filepath.Join(*outputDir, "benchspec.schema.json")
	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		slog.Error("Failed to write JSON schema", "path", path, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Generated JSON schema: %s\n", path)
}
