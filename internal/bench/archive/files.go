package archive

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

const (
	statsSuffix    = "Stats.csv"
	runtimesSuffix = "Runtimes.csv"
)

func StatsFile(algorithm string) string {
	return algorithm + statsSuffix
}

func RuntimesFile(algorithm string) string {
	return algorithm + runtimesSuffix
}

func StatsPath(dir, algorithm string) string {
	return filepath.Join(dir, StatsFile(algorithm))
}

func RuntimesPath(dir, algorithm string) string {
	return filepath.Join(dir, RuntimesFile(algorithm))
}

// IsMissing reports whether err comes from an archive that does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// ListAlgorithms returns the algorithms that have a stats archive in dir, sorted by name.
func ListAlgorithms(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+statsSuffix))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), statsSuffix)
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
