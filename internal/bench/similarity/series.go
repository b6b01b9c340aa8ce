package similarity

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Series is a time series loaded from a one-value-per-line file.
type Series []float64

func LoadSeriesFromFile(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	return ReadSeries(f)
}

// ErrBlankLine rejects a blank line in a series file; skipping it would shift
// every later sample.
var ErrBlankLine = errors.New("blank line in series")

// ReadSeries reads one value per line. Surrounding whitespace is ignored and a
// blank line is an error.
func ReadSeries(r io.Reader) (Series, error) {
	var s Series
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return nil, fmt.Errorf("series line %d: %w", lineNo, ErrBlankLine)
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("series line %d: %w", lineNo, err)
		}
		s = append(s, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}
	return s, nil
}

// Window returns s[pos:pos+ws] or an error when the window leaves the series.
func (s Series) Window(pos, ws int) ([]float64, error) {
	if ws < 1 {
		return nil, fmt.Errorf("window size must be positive, got %d", ws)
	}
	if pos < 0 || pos+ws > len(s) {
		return nil, fmt.Errorf("window [%d, %d) out of range for series of length %d", pos, pos+ws, len(s))
	}
	return s[pos : pos+ws], nil
}

// Compare returns the reported distance between the windows at pos0 and pos1.
func (s Series) Compare(pos0, pos1, ws int) (float64, error) {
	a, err := s.Window(pos0, ws)
	if err != nil {
		return 0, err
	}
	b, err := s.Window(pos1, ws)
	if err != nil {
		return 0, err
	}
	return ReportedDistance(a, b)
}
