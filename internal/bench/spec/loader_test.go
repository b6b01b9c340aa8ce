package spec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/motif-bench/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		yaml := `
cases:
  dir: timeSeriesMotifBenchmark
  begin: 0
  count: 384

algorithms:
  - name: mk
    command: algorithms/mk_l
    args: ["{{ts_path}}", "{{length}}", "{{ws}}", "{{ws}}", "10", "{{radius}}"]
  - name: emma_2r
    command: java
    args: ["-jar", "algorithms/EMMA.jar", "{{ts_path}}", "{{ws}}", "{{radius_x2}}"]
    timed: false

results:
  dir: out
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Len(t, s.Algorithms, 2)
		assert.Equal(t, []string{"mk", "emma_2r"}, s.Names())
		assert.Equal(t, 384, s.Cases.Count)
		assert.Equal(t, "out", s.Results.Dir)
		assert.True(t, s.Algorithms[0].IsTimed())
		assert.False(t, s.Algorithms[1].IsTimed())
		assert.Nil(t, s.Generator)
	})

	t.Run("defaults", func(t *testing.T) {
		yaml := `
cases:
  dir: bench
algorithms:
  - name: gv
    command: algorithms/gv
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "time_series_", s.Cases.Prefix)
		assert.Equal(t, DefaultLength, s.Cases.Length)
		assert.Equal(t, DefaultResultsDir, s.Results.Dir)
		assert.Equal(t, ".", s.Results.WorkDir)
		assert.Equal(t, "gv.csv", s.Algorithms[0].Artifact)
		assert.Equal(t, "bench/time_series_2", filepath.ToSlash(s.Layout().CaseDir(2)))
	})

	t.Run("no algorithms", func(t *testing.T) {
		yaml := `
cases:
  dir: bench
algorithms: []
`
		_, err := Parse([]byte(yaml))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no algorithms")

		var ve *apperr.ValidationError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("no cases dir", func(t *testing.T) {
		yaml := `
algorithms:
  - name: mk
    command: mk_l
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "no cases dir")
	})

	t.Run("duplicate algorithm", func(t *testing.T) {
		yaml := `
cases:
  dir: bench
algorithms:
  - name: mk
    command: mk_l
  - name: mk
    command: mk_l
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "declared twice")
	})

	t.Run("algorithm without command", func(t *testing.T) {
		yaml := `
cases:
  dir: bench
algorithms:
  - name: setfinder
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, `algorithm "setfinder" has no command`)
	})

	t.Run("negative range", func(t *testing.T) {
		yaml := `
cases:
  dir: bench
  count: -1
algorithms:
  - name: mk
    command: mk_l
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "count must not be negative")
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := Parse([]byte("cases: [unclosed"))
		assert.ErrorContains(t, err, "parse spec YAML")
	})
}

func TestParse_Generator(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		yaml := `
cases:
  dir: timeSeriesMotifBenchmark
algorithms:
  - name: mk
    command: mk_l
generator:
  command: ./TSGenerator
  batches:
    - target: timeSeriesMotifBenchmark
      groups:
        - shapes: [box, sine]
          heights: ["150.0"]
          randomness: ["0.03"]
          sizes: ["7"]
          windows: ["100"]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		require.NotNil(t, s.Generator)
		assert.Equal(t, DefaultMaxAttempts, s.Generator.MaxAttempts)
		assert.Equal(t, DefaultLength, s.Generator.Length)
		assert.Equal(t, DefaultGeneratorArgs, s.Generator.Args)
		assert.Equal(t, DefaultOrder, s.Generator.Batches[0].Groups[0].Order)
	})

	t.Run("custom order", func(t *testing.T) {
		yaml := `
cases:
  dir: bench
algorithms:
  - name: mk
    command: mk_l
generator:
  command: ./TSGenerator
  batches:
    - target: db
      database: true
      groups:
        - order: [randomness, shape, height, size, window]
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.True(t, s.Generator.Batches[0].Database)
		assert.Equal(t, []string{"randomness", "shape", "height", "size", "window"}, s.Generator.Batches[0].Groups[0].Order)
	})

	t.Run("order missing a dimension", func(t *testing.T) {
		yaml := `
cases:
  dir: bench
algorithms:
  - name: mk
    command: mk_l
generator:
  command: ./TSGenerator
  batches:
    - target: db
      groups:
        - order: [randomness, shape, height, size, size]
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, `missing dimension "window"`)
	})

	t.Run("batch without target", func(t *testing.T) {
		yaml := `
cases:
  dir: bench
algorithms:
  - name: mk
    command: mk_l
generator:
  command: ./TSGenerator
  batches:
    - groups: []
`
		_, err := Parse([]byte(yaml))
		assert.ErrorContains(t, err, "has no target")
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cases:\n  dir: bench\nalgorithms:\n  - name: mk\n    command: mk_l\n"), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bench", s.Cases.Dir)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_InvalidAlgorithmName(t *testing.T) {
	_, err := Parse([]byte(`
cases:
  dir: cases
  count: 1
algorithms:
  - name: "mk/../x"
    command: ./mk
`))
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "may only hold letters")
}

func TestLoadFromFile_ExamplePlan(t *testing.T) {
	bs, err := LoadFromFile(filepath.Join("..", "..", "..", "configs", "bench", "motifs.yaml"))
	require.NoError(t, err)

	assert.Len(t, bs.Algorithms, 9)
	assert.Equal(t, []string{"mk", "mp", "lm", "emma", "emma_2r", "gv", "scanmk", "clustermk", "setfinder"}, bs.Names())
	assert.False(t, bs.Algorithms[4].IsTimed())
	require.NotNil(t, bs.Generator)
	assert.Len(t, bs.Generator.Batches, 2)
	assert.True(t, bs.Generator.Batches[1].Database)
	assert.Equal(t, DefaultGeneratorArgs, bs.Generator.Args)
}
