package router

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/DjordjeVuckovic/motif-bench/internal/apperr"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/archive"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/report"
	"github.com/DjordjeVuckovic/motif-bench/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var algorithmName = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type ResultsRouter struct {
	e          *echo.Echo
	resultsDir string
	scores     storage.ScoreReader
}

type ResultsRouterOption func(*ResultsRouter)

// WithScoreReader enables the per-run score route.
func WithScoreReader(r storage.ScoreReader) ResultsRouterOption {
	return func(rr *ResultsRouter) {
		rr.scores = r
	}
}

func NewResultsRouter(e *echo.Echo, resultsDir string, opts ...ResultsRouterOption) *ResultsRouter {
	r := &ResultsRouter{
		e:          e,
		resultsDir: resultsDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ResultsRouter) Bind() {
	r.e.GET("/algorithms", r.algorithmsHandler)
	r.e.GET("/algorithms/:name/stats", r.statsHandler)
	r.e.GET("/algorithms/:name/runtimes", r.runtimesHandler)
	r.e.GET("/summary", r.summaryHandler)
	if r.scores != nil {
		r.e.GET("/runs/:id/scores", r.runScoresHandler)
	}
}

type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

// StatsRow is one archived case score with its derived measures.
type StatsRow struct {
	Case      int     `json:"case"`
	TP        int     `json:"tp"`
	FP        int     `json:"fp"`
	FN        int     `json:"fn"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

type StatsResponse struct {
	Algorithm string     `json:"algorithm"`
	Rows      []StatsRow `json:"rows"`
}

type RuntimesResponse struct {
	Algorithm string    `json:"algorithm"`
	Seconds   []float64 `json:"seconds"`
}

type ScoresResponse struct {
	RunID  string                `json:"run_id"`
	Scores []storage.ScoreRecord `json:"scores"`
}

// algorithmsHandler godoc
// @Summary List algorithms
// @Description Algorithms that have a stats archive in the results directory
// @Tags results
// @Produce json
// @Success 200 {object} AlgorithmsResponse
// @Router /algorithms [get]
func (r *ResultsRouter) algorithmsHandler(c echo.Context) error {
	names, err := archive.ListAlgorithms(r.resultsDir)
	if err != nil {
		return fmt.Errorf("list archives: %w", err)
	}
	return c.JSON(http.StatusOK, AlgorithmsResponse{Algorithms: names})
}

// statsHandler godoc
// @Summary Algorithm scores
// @Tags results
// @Produce json
// @Param name path string true "Algorithm name"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /algorithms/{name}/stats [get]
func (r *ResultsRouter) statsHandler(c echo.Context) error {
	name, err := pathAlgorithm(c)
	if err != nil {
		return err
	}

	counts, err := archive.ReadStatsFile(archive.StatsPath(r.resultsDir, name))
	if err != nil {
		return archiveError(name, err)
	}

	rows := make([]StatsRow, len(counts))
	for i, ct := range counts {
		rows[i] = statsRow(i, ct)
	}
	return c.JSON(http.StatusOK, StatsResponse{Algorithm: name, Rows: rows})
}

// runtimesHandler godoc
// @Summary Algorithm runtimes
// @Tags results
// @Produce json
// @Param name path string true "Algorithm name"
// @Success 200 {object} RuntimesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /algorithms/{name}/runtimes [get]
func (r *ResultsRouter) runtimesHandler(c echo.Context) error {
	name, err := pathAlgorithm(c)
	if err != nil {
		return err
	}

	seconds, err := archive.ReadRuntimesFile(archive.RuntimesPath(r.resultsDir, name))
	if err != nil {
		return archiveError(name, err)
	}
	return c.JSON(http.StatusOK, RuntimesResponse{Algorithm: name, Seconds: seconds})
}

// summaryHandler godoc
// @Summary Summary over all archives
// @Tags results
// @Produce json
// @Success 200 {object} report.Report
// @Router /summary [get]
func (r *ResultsRouter) summaryHandler(c echo.Context) error {
	rep, err := report.FromArchives(r.resultsDir, nil)
	if err != nil {
		return fmt.Errorf("build summary: %w", err)
	}
	return c.JSON(http.StatusOK, rep)
}

// runScoresHandler godoc
// @Summary Scores mirrored for one run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} ScoresResponse
// @Failure 400 {object} map[string]string
// @Router /runs/{id}/scores [get]
func (r *ResultsRouter) runScoresHandler(c echo.Context) error {
	runID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid run id", err)
	}

	records, err := r.scores.ListByRun(c.Request().Context(), runID)
	if err != nil {
		return fmt.Errorf("list scores for run %s: %w", runID, err)
	}
	if records == nil {
		records = []storage.ScoreRecord{}
	}
	return c.JSON(http.StatusOK, ScoresResponse{RunID: runID.String(), Scores: records})
}

func pathAlgorithm(c echo.Context) (string, error) {
	name := c.Param("name")
	if !algorithmName.MatchString(name) {
		return "", apperr.NewValidation(fmt.Sprintf("invalid algorithm name %q", name))
	}
	return name, nil
}

func archiveError(name string, err error) error {
	if archive.IsMissing(err) {
		return apperr.NewNotFound("archive for algorithm", name, err)
	}
	return fmt.Errorf("read archive for %s: %w", name, err)
}

func statsRow(i int, c metrics.Counts) StatsRow {
	return StatsRow{
		Case:      i,
		TP:        c.TP,
		FP:        c.FP,
		FN:        c.FN,
		Precision: c.Precision(),
		Recall:    c.Recall(),
		F1:        c.F1(),
	}
}
