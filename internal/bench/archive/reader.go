package archive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
)

func ReadStatsFile(path string) ([]metrics.Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stats archive: %w", err)
	}
	defer f.Close()

	return ReadStats(f)
}

// ReadStats parses "tp, fp, fn" rows.
func ReadStats(r io.Reader) ([]metrics.Counts, error) {
	var out []metrics.Counts
	err := eachRow(r, func(lineNo int, line string) error {
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return fmt.Errorf("stats row %d: expected 3 fields, got %d", lineNo, len(fields))
		}
		vals := make([]int, 3)
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return fmt.Errorf("stats row %d: %w", lineNo, err)
			}
			vals[i] = v
		}
		out = append(out, metrics.Counts{TP: vals[0], FP: vals[1], FN: vals[2]})
		return nil
	})
	return out, err
}

func ReadRuntimesFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open runtimes archive: %w", err)
	}
	defer f.Close()

	return ReadRuntimes(f)
}

// ReadRuntimes parses one elapsed-seconds value per row.
func ReadRuntimes(r io.Reader) ([]float64, error) {
	var out []float64
	err := eachRow(r, func(lineNo int, line string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return fmt.Errorf("runtimes row %d: %w", lineNo, err)
		}
		out = append(out, v)
		return nil
	})
	return out, err
}

func eachRow(r io.Reader, fn func(lineNo int, line string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read archive: %w", err)
	}
	return nil
}
