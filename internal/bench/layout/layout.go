package layout

import (
	"path/filepath"
	"strconv"
)

const DefaultPrefix = "time_series_"

// Layout names the numbered case directories of a benchmark and the member
// files inside them. Case i lives in <Root>/<Prefix><i>/ and holds
// <Prefix><i>.csv, <Prefix>meta_<i>.csv and <Prefix>plot_<i>.plt.
type Layout struct {
	Root   string
	Prefix string
}

func New(root, prefix string) Layout {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return Layout{Root: root, Prefix: prefix}
}

func (l Layout) DirName(i int) string {
	return l.Prefix + strconv.Itoa(i)
}

func (l Layout) CaseDir(i int) string {
	return filepath.Join(l.Root, l.DirName(i))
}

func (l Layout) DataName(i int) string {
	return l.Prefix + strconv.Itoa(i) + ".csv"
}

func (l Layout) MetaName(i int) string {
	return l.Prefix + "meta_" + strconv.Itoa(i) + ".csv"
}

func (l Layout) PlotName(i int) string {
	return l.Prefix + "plot_" + strconv.Itoa(i) + ".plt"
}

func (l Layout) DataPath(i int) string {
	return filepath.Join(l.CaseDir(i), l.DataName(i))
}

func (l Layout) MetaPath(i int) string {
	return filepath.Join(l.CaseDir(i), l.MetaName(i))
}

// Members returns the three per-case file names for index i, in a fixed order.
func (l Layout) Members(i int) []string {
	return []string{l.DataName(i), l.MetaName(i), l.PlotName(i)}
}

// ArtifactPath is where the raw candidate stream of one algorithm is kept.
func (l Layout) ArtifactPath(i int, artifact string) string {
	return filepath.Join(l.CaseDir(i), artifact)
}
