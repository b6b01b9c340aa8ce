package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/motif-bench/internal/bench/layout"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_AppendAndRead(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(dir)

	require.NoError(t, rec.AppendScore("mk", metrics.Counts{TP: 20}))
	require.NoError(t, rec.AppendScore("mk", metrics.Counts{TP: 5, FP: 5, FN: 5}))
	require.NoError(t, rec.AppendRuntime("mk", 1500*time.Millisecond))

	data, err := os.ReadFile(rec.StatsPath("mk"))
	require.NoError(t, err)
	assert.Equal(t, "20, 0, 0\n5, 5, 5\n", string(data))

	stats, err := ReadStatsFile(rec.StatsPath("mk"))
	require.NoError(t, err)
	assert.Equal(t, []metrics.Counts{{TP: 20}, {TP: 5, FP: 5, FN: 5}}, stats)

	runtimes, err := ReadRuntimesFile(rec.RuntimesPath("mk"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, runtimes)
}

func TestRecorder_ResetAndPublish(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(dir)

	require.NoError(t, rec.AppendScore("gv", metrics.Counts{FN: 3}))
	require.NoError(t, rec.Reset([]string{"gv", "never-written"}))
	_, err := os.Stat(rec.StatsPath("gv"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, rec.AppendScore("gv", metrics.Counts{TP: 1}))
	require.NoError(t, rec.AppendRuntime("gv", time.Second))
	require.NoError(t, rec.AppendScore("emma_2r", metrics.Counts{TP: 2}))

	results := filepath.Join(dir, "results")
	moved, err := rec.Publish(results, []string{"gv", "emma_2r"})
	require.NoError(t, err)
	assert.Len(t, moved, 3)

	_, err = os.Stat(filepath.Join(results, "gvStats.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(results, "emma_2rRuntimes.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadStats_Malformed(t *testing.T) {
	_, err := ReadStats(strings.NewReader("1, 2\n"))
	assert.ErrorContains(t, err, "expected 3 fields")

	_, err = ReadStats(strings.NewReader("1, x, 3\n"))
	assert.ErrorContains(t, err, "stats row 1")

	_, err = ReadRuntimes(strings.NewReader("0.5\nslow\n"))
	assert.ErrorContains(t, err, "runtimes row 2")
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name       string
		historical string
		fresh      string
		l          int
		want       string
	}{
		{
			name:       "insert in the middle",
			historical: "h0\nh1\nh2\nh3\n",
			fresh:      "n0\nn1\n",
			l:          2,
			want:       "h0\nh1\nn0\nn1\nh2\nh3\n",
		},
		{
			name:       "insert at start",
			historical: "h0\nh1\n",
			fresh:      "n0\n",
			l:          0,
			want:       "n0\nh0\nh1\n",
		},
		{
			name:       "offset beyond historical",
			historical: "h0\n",
			fresh:      "n0\n",
			l:          5,
			want:       "h0\nn0\n",
		},
		{
			name:       "missing trailing newlines",
			historical: "h0\nh1",
			fresh:      "n0",
			l:          1,
			want:       "h0\nn0\nh1\n",
		},
		{
			name:       "empty fresh archive",
			historical: "h0\nh1\n",
			fresh:      "",
			l:          1,
			want:       "h0\nh1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := Merge(strings.NewReader(tt.historical), strings.NewReader(tt.fresh), tt.l, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestMerge_RoundTrip(t *testing.T) {
	hist := []string{"1, 0, 0", "2, 0, 0", "3, 0, 0", "4, 0, 0"}
	fresh := []string{"9, 9, 9", "8, 8, 8"}
	l := 3

	var out strings.Builder
	err := Merge(
		strings.NewReader(strings.Join(hist, "\n")+"\n"),
		strings.NewReader(strings.Join(fresh, "\n")+"\n"),
		l, &out,
	)
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, rows, len(hist)+len(fresh))
	assert.Equal(t, hist[:l], rows[:l])
	assert.Equal(t, fresh, rows[l:l+len(fresh)])
	assert.Equal(t, hist[l:], rows[l+len(fresh):])
}

func TestMerge_NegativeOffset(t *testing.T) {
	err := Merge(strings.NewReader(""), strings.NewReader(""), -1, &strings.Builder{})
	assert.ErrorIs(t, err, ErrNegativeOffset)
}

func TestMergeFiles(t *testing.T) {
	histDir := t.TempDir()
	freshDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(histDir, "mkStats.csv"), []byte("1, 0, 0\n2, 0, 0\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(freshDir, "mkStats.csv"), []byte("7, 7, 7\n"), 0644))

	require.NoError(t, MergeAll(histDir, freshDir, []string{"mkStats.csv"}, 1))

	data, err := os.ReadFile(filepath.Join(histDir, "mkStats.csv"))
	require.NoError(t, err)
	assert.Equal(t, "1, 0, 0\n7, 7, 7\n2, 0, 0\n", string(data))

	entries, err := os.ReadDir(histDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMergeFiles_MissingHistorical(t *testing.T) {
	freshDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(freshDir, "gvStats.csv"), []byte("1, 1, 1\n"), 0644))

	err := MergeFiles(filepath.Join(t.TempDir(), "gvStats.csv"), filepath.Join(freshDir, "gvStats.csv"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = MergeAll(t.TempDir(), freshDir, []string{"gvStats.csv", "mkStats.csv"}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merge gvStats.csv")
	assert.Contains(t, err.Error(), "merge mkStats.csv")
}

func TestPlanRenumber(t *testing.T) {
	assert.Equal(t, []Move{{From: 2, To: 4}, {From: 1, To: 3}, {From: 0, To: 2}}, PlanRenumber(0, 2, 3))
	assert.Equal(t, []Move{{From: 2, To: 0}, {From: 3, To: 1}, {From: 4, To: 2}}, PlanRenumber(2, 0, 3))
	assert.Nil(t, PlanRenumber(3, 3, 4))
	assert.Nil(t, PlanRenumber(0, 5, 0))
}

func writeCase(t *testing.T, l layout.Layout, i int, tag string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(l.CaseDir(i), 0755))
	for _, name := range l.Members(i) {
		require.NoError(t, os.WriteFile(filepath.Join(l.CaseDir(i), name), []byte(tag), 0644))
	}
}

func readCase(t *testing.T, l layout.Layout, i int) string {
	t.Helper()
	data, err := os.ReadFile(l.DataPath(i))
	require.NoError(t, err)
	for _, name := range l.Members(i) {
		_, err := os.Stat(filepath.Join(l.CaseDir(i), name))
		require.NoError(t, err, "member %s of case %d", name, i)
	}
	return string(data)
}

func TestRenumber_OverlappingForward(t *testing.T) {
	l := layout.New(t.TempDir(), "")
	for i := 0; i < 3; i++ {
		writeCase(t, l, i, string(rune('a'+i)))
	}

	require.NoError(t, Renumber(l, 0, 1, 3))

	_, err := os.Stat(l.CaseDir(0))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "a", readCase(t, l, 1))
	assert.Equal(t, "b", readCase(t, l, 2))
	assert.Equal(t, "c", readCase(t, l, 3))
}

func TestRenumber_OverlappingBackward(t *testing.T) {
	l := layout.New(t.TempDir(), "")
	for i := 2; i < 5; i++ {
		writeCase(t, l, i, string(rune('a'+i)))
	}

	require.NoError(t, Renumber(l, 2, 1, 3))

	assert.Equal(t, "c", readCase(t, l, 1))
	assert.Equal(t, "d", readCase(t, l, 2))
	assert.Equal(t, "e", readCase(t, l, 3))
	_, err := os.Stat(l.CaseDir(4))
	assert.True(t, os.IsNotExist(err))
}

func TestRenumber_RoundTrip(t *testing.T) {
	l := layout.New(t.TempDir(), "")
	for i := 0; i < 3; i++ {
		writeCase(t, l, i, string(rune('a'+i)))
	}

	require.NoError(t, Renumber(l, 0, 10, 3))
	require.NoError(t, Renumber(l, 10, 0, 3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, string(rune('a'+i)), readCase(t, l, i))
	}
	_, err := os.Stat(l.CaseDir(10))
	assert.True(t, os.IsNotExist(err))
}

func TestRenumber_SkipsMissing(t *testing.T) {
	l := layout.New(t.TempDir(), "")
	require.NoError(t, os.MkdirAll(l.CaseDir(1), 0755))
	require.NoError(t, os.WriteFile(l.DataPath(1), []byte("x"), 0644))

	require.NoError(t, Renumber(l, 0, 5, 2))

	data, err := os.ReadFile(l.DataPath(6))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
	_, err = os.Stat(l.MetaPath(6))
	assert.True(t, os.IsNotExist(err))
}

func TestRenumber_RefusesExistingTarget(t *testing.T) {
	l := layout.New(t.TempDir(), "")
	writeCase(t, l, 0, "a")
	writeCase(t, l, 1, "b")
	writeCase(t, l, 5, "z")

	// 1 -> 6 is clear; 0 -> 5 collides and must stop the plan before 1 moves.
	err := Renumber(l, 0, 5, 2)
	assert.ErrorContains(t, err, "already exists")

	assert.Equal(t, "a", readCase(t, l, 0))
	assert.Equal(t, "b", readCase(t, l, 1))
	assert.Equal(t, "z", readCase(t, l, 5))
	_, err = os.Stat(l.CaseDir(6))
	assert.True(t, os.IsNotExist(err))
}

func TestRelocate_RestoresMembersOnFailure(t *testing.T) {
	l := layout.New(t.TempDir(), "")
	writeCase(t, l, 3, "c")

	dst := filepath.Join(t.TempDir(), "missing", l.DirName(4))
	err := relocate(l.CaseDir(3), dst, l.Members(3), l.Members(4))
	require.Error(t, err)

	assert.Equal(t, "c", readCase(t, l, 3))
	for _, name := range l.Members(4) {
		_, err := os.Stat(filepath.Join(l.CaseDir(3), name))
		assert.True(t, os.IsNotExist(err), "member %s", name)
	}
}

func TestListAlgorithms(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"mkStats.csv", "gvStats.csv", "gvRuntimes.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	names, err := ListAlgorithms(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"gv", "mk"}, names)

	empty, err := ListAlgorithms(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, empty)
}
