package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
)

// Recorder appends per-query rows to the archives of each algorithm. Every
// append opens the archive, writes one row and closes it again, so no handle
// outlives a single write.
type Recorder struct {
	dir string
}

func NewRecorder(dir string) *Recorder {
	return &Recorder{dir: dir}
}

func (r *Recorder) Dir() string {
	return r.dir
}

func (r *Recorder) StatsPath(algorithm string) string {
	return StatsPath(r.dir, algorithm)
}

func (r *Recorder) RuntimesPath(algorithm string) string {
	return RuntimesPath(r.dir, algorithm)
}

func (r *Recorder) AppendScore(algorithm string, c metrics.Counts) error {
	return appendLine(r.StatsPath(algorithm), FormatScore(c))
}

func (r *Recorder) AppendRuntime(algorithm string, d time.Duration) error {
	return appendLine(r.RuntimesPath(algorithm), FormatRuntime(d))
}

// Reset removes archives left behind by an earlier run of the given algorithms.
func (r *Recorder) Reset(algorithms []string) error {
	for _, alg := range algorithms {
		for _, p := range []string{r.StatsPath(alg), r.RuntimesPath(alg)} {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("remove stale archive: %w", err)
			}
		}
	}
	return nil
}

// Publish moves the archives of the given algorithms into resultsDir,
// replacing files of the same name. Missing archives are skipped.
func (r *Recorder) Publish(resultsDir string, algorithms []string) ([]string, error) {
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return nil, fmt.Errorf("create results dir: %w", err)
	}

	var moved []string
	for _, alg := range algorithms {
		for _, name := range []string{StatsFile(alg), RuntimesFile(alg)} {
			src := filepath.Join(r.dir, name)
			if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			dst := filepath.Join(resultsDir, name)
			if err := os.Rename(src, dst); err != nil {
				return moved, fmt.Errorf("publish %s: %w", name, err)
			}
			moved = append(moved, dst)
		}
	}
	return moved, nil
}

func FormatScore(c metrics.Counts) string {
	return strconv.Itoa(c.TP) + ", " + strconv.Itoa(c.FP) + ", " + strconv.Itoa(c.FN) + "\n"
}

func FormatRuntime(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "\n"
}

func appendLine(path, line string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close archive: %w", cerr)
		}
	}()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append archive row: %w", err)
	}
	return nil
}
