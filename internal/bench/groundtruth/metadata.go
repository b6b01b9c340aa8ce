package groundtruth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/motif-bench/internal/apperr"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/positions"
)

// Metadata is the generator's description of one benchmark case.
//
// Layout: a header line, then the radius line, then the window-size line, then
// one line per injected occurrence. The value of every data line is its
// second-to-last comma-separated field.
type Metadata struct {
	Radius     float64
	WindowSize int
	Starts     []int
}

func LoadFromFile(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metadata: %w", err)
	}
	defer f.Close()

	md, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	return md, nil
}

func Parse(r io.Reader) (*Metadata, error) {
	sc := bufio.NewScanner(r)
	md := &Metadata{}

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		switch {
		case lineNo == 1:
			continue
		case lineNo == 2:
			v, err := valueField(line, lineNo)
			if err != nil {
				return nil, err
			}
			md.Radius, err = strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, apperr.NewValidationWrap(fmt.Sprintf("line %d: invalid radius %q", lineNo, v), err)
			}
		case lineNo == 3:
			v, err := valueField(line, lineNo)
			if err != nil {
				return nil, err
			}
			md.WindowSize, err = strconv.Atoi(v)
			if err != nil {
				return nil, apperr.NewValidationWrap(fmt.Sprintf("line %d: invalid window size %q", lineNo, v), err)
			}
			if md.WindowSize < 1 {
				return nil, apperr.NewValidation(fmt.Sprintf("line %d: window size must be positive, got %d", lineNo, md.WindowSize))
			}
		default:
			if strings.TrimSpace(line) == "" {
				continue
			}
			v, err := valueField(line, lineNo)
			if err != nil {
				return nil, err
			}
			pos, err := strconv.Atoi(v)
			if err != nil {
				return nil, apperr.NewValidationWrap(fmt.Sprintf("line %d: invalid start position %q", lineNo, v), err)
			}
			md.Starts = append(md.Starts, pos)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	if lineNo < 3 {
		return nil, apperr.NewValidation("metadata needs a header, a radius and a window size line")
	}

	return md, nil
}

// Truth is the ground-truth coverage of the injected occurrences.
func (m *Metadata) Truth() positions.Set {
	return positions.FromStarts(m.Starts, m.WindowSize)
}

func valueField(line string, lineNo int) (string, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return "", apperr.NewValidation(fmt.Sprintf("line %d: expected at least two fields, got %q", lineNo, line))
	}
	return strings.TrimSpace(fields[len(fields)-2]), nil
}
