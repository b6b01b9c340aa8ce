package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/layout"
)

// Move relocates case From to case To.
type Move struct {
	From int
	To   int
}

// PlanRenumber lists the moves shifting [begin, begin+count) to
// [end, end+count). When begin < end the highest offset moves first,
// otherwise the lowest, so an overlapping target is always vacated before it
// is written.
func PlanRenumber(begin, end, count int) []Move {
	if begin == end || count <= 0 {
		return nil
	}

	moves := make([]Move, 0, count)
	if begin < end {
		for i := count - 1; i >= 0; i-- {
			moves = append(moves, Move{From: begin + i, To: end + i})
		}
	} else {
		for i := 0; i < count; i++ {
			moves = append(moves, Move{From: begin + i, To: end + i})
		}
	}
	return moves
}

// Renumber applies PlanRenumber on the case directories of l. Absent source
// directories and absent member files are skipped. An existing target
// directory is never overwritten: the whole plan is checked before the first
// move, so a collision leaves every case in place.
func Renumber(l layout.Layout, begin, end, count int) error {
	moves := PlanRenumber(begin, end, count)
	if err := checkTargets(l, moves); err != nil {
		return err
	}
	for _, m := range moves {
		if err := moveCase(l, m); err != nil {
			return fmt.Errorf("move case %d to %d: %w", m.From, m.To, err)
		}
	}
	return nil
}

// checkTargets fails when a move would land on an existing directory that no
// earlier move vacates.
func checkTargets(l layout.Layout, moves []Move) error {
	vacated := make(map[int]bool, len(moves))
	for _, m := range moves {
		if isCaseDir(l.CaseDir(m.From)) {
			vacated[m.From] = true
		}
	}

	for _, m := range moves {
		if !vacated[m.From] || vacated[m.To] {
			continue
		}
		dst := l.CaseDir(m.To)
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("move case %d to %d: target %s already exists", m.From, m.To, dst)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("move case %d to %d: %w", m.From, m.To, err)
		}
	}
	return nil
}

func isCaseDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func moveCase(l layout.Layout, m Move) error {
	src := l.CaseDir(m.From)
	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("case directory missing, skipping", "dir", src)
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	dst := l.CaseDir(m.To)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("target %s already exists", dst)
	}

	return relocate(src, dst, l.Members(m.From), l.Members(m.To))
}

// relocate renames the present members of src from their old names to the
// new ones and then moves src to dst. On failure the renamed members get
// their old names back, so src is left as it was found.
func relocate(src, dst string, from, to []string) error {
	var renamed []int
	for i := range from {
		oldPath := filepath.Join(src, from[i])
		if _, err := os.Stat(oldPath); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := os.Rename(oldPath, filepath.Join(src, to[i])); err != nil {
			restoreMembers(src, from, to, renamed)
			return fmt.Errorf("rename member %s: %w", from[i], err)
		}
		renamed = append(renamed, i)
	}

	if err := os.Rename(src, dst); err != nil {
		restoreMembers(src, from, to, renamed)
		return err
	}
	return nil
}

// restoreMembers gives the renamed members of dir their old names back.
func restoreMembers(dir string, from, to []string, renamed []int) {
	for _, i := range renamed {
		if err := os.Rename(filepath.Join(dir, to[i]), filepath.Join(dir, from[i])); err != nil {
			slog.Error("failed to restore case member", "dir", dir, "member", from[i], "error", err)
		}
	}
}
