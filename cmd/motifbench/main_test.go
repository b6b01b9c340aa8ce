package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCliConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     cliConfig
		wantErr string
	}{
		{name: "run", cfg: cliConfig{Mode: modeRun}},
		{name: "unknown mode", cfg: cliConfig{Mode: "judge"}, wantErr: "unknown mode"},
		{name: "negative offset", cfg: cliConfig{Mode: modeMerge, Offset: -1}, wantErr: "offset"},
		{name: "negative count", cfg: cliConfig{Mode: modeRenumber, Count: -2}, wantErr: "must not be negative"},
		{name: "similarity without series", cfg: cliConfig{Mode: modeSimilarity, WindowSize: 10}, wantErr: "--series"},
		{name: "similarity without ws", cfg: cliConfig{Mode: modeSimilarity, SeriesPath: "ts.csv"}, wantErr: "window size"},
		{name: "similarity", cfg: cliConfig{Mode: modeSimilarity, SeriesPath: "ts.csv", WindowSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMergeFileNames(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"mkStats.csv", "mkRuntimes.csv", "emma_2rStats.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("0, 0, 1\n"), 0644))
	}

	files, err := mergeFileNames(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"emma_2rStats.csv", "mkStats.csv", "mkRuntimes.csv"}, files)

	files, err = mergeFileNames(dir, []string{"mk", "gv"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mkStats.csv", "mkRuntimes.csv"}, files)
}
