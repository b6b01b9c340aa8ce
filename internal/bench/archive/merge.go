package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

var ErrNegativeOffset = errors.New("archive: merge offset must not be negative")

// Merge writes the first l rows of historical, then every row of fresh, then
// the remaining rows of historical. A historical archive shorter than l is
// copied whole before fresh. Every row written ends in a newline.
func Merge(historical, fresh io.Reader, l int, out io.Writer) error {
	if l < 0 {
		return ErrNegativeOffset
	}

	hist := bufio.NewReader(historical)
	w := bufio.NewWriter(out)

	for i := 0; i < l; i++ {
		line, err := readRow(hist)
		if err != nil {
			return fmt.Errorf("read historical archive: %w", err)
		}
		if line == "" {
			break
		}
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write merged archive: %w", err)
		}
	}

	if err := copyRows(w, bufio.NewReader(fresh)); err != nil {
		return fmt.Errorf("copy new archive: %w", err)
	}
	if err := copyRows(w, hist); err != nil {
		return fmt.Errorf("copy historical remainder: %w", err)
	}

	return w.Flush()
}

// MergeFiles merges freshPath into historicalPath at row offset l. The result
// is written to a temporary file next to the historical archive and then moved
// over it. A missing historical archive is an error.
func MergeFiles(historicalPath, freshPath string, l int) (err error) {
	hist, err := os.Open(historicalPath)
	if err != nil {
		return fmt.Errorf("open historical archive: %w", err)
	}
	defer hist.Close()

	fresh, err := os.Open(freshPath)
	if err != nil {
		return fmt.Errorf("open new archive: %w", err)
	}
	defer fresh.Close()

	dir, base := filepath.Split(historicalPath)
	tmp, err := os.CreateTemp(dir, "new"+base+".*")
	if err != nil {
		return fmt.Errorf("create merge output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := Merge(hist, fresh, l, tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close merge output: %w", err)
	}
	if err := os.Rename(tmp.Name(), historicalPath); err != nil {
		return fmt.Errorf("replace historical archive: %w", err)
	}
	return nil
}

// MergeAll merges every named archive from freshDir into historicalDir. All
// names are attempted; the failures are returned together.
func MergeAll(historicalDir, freshDir string, names []string, l int) error {
	var errs error
	for _, name := range names {
		err := MergeFiles(filepath.Join(historicalDir, name), filepath.Join(freshDir, name), l)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("merge %s: %w", name, err))
		}
	}
	return errs
}

func readRow(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF {
		if line != "" {
			return line + "\n", nil
		}
		return "", nil
	}
	return line, err
}

func copyRows(w *bufio.Writer, r *bufio.Reader) error {
	for {
		line, err := readRow(r)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
}
