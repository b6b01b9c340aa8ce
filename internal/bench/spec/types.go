package spec

type BenchSpec struct {
	Cases      CasesConfig      `yaml:"cases" schema:"required"`
	Algorithms []Algorithm      `yaml:"algorithms" schema:"required,minItems=1"`
	Results    ResultsConfig    `yaml:"results"`
	Generator  *GeneratorConfig `yaml:"generator,omitempty"`
}

// CasesConfig selects the numbered benchmark cases [Begin, Begin+Count).
type CasesConfig struct {
	Dir    string `yaml:"dir" schema:"required" description:"Directory holding the numbered case directories"`
	Prefix string `yaml:"prefix" schema:"default=time_series_"`
	Begin  int    `yaml:"begin"`
	Count  int    `yaml:"count" schema:"required"`
	// Length is the number of values per series, passed to algorithms as {{length}}.
	Length int `yaml:"length" schema:"default=10000"`
}

type Algorithm struct {
	Name    string   `yaml:"name" schema:"required,pattern=^[A-Za-z0-9_.-]+$"`
	Command string   `yaml:"command" schema:"required"`
	Args    []string `yaml:"args" description:"Arguments with {{ts_path}}, {{length}}, {{ws}}, {{radius}}, {{radius_x2}} and {{radius_sq}} placeholders"`
	// Timed defaults to true. Untimed algorithms write no runtime rows.
	Timed *bool `yaml:"timed,omitempty" schema:"default=true"`
	// Artifact is the file name of the raw output kept in each case directory.
	Artifact string `yaml:"artifact,omitempty" description:"Raw output file kept in each case directory, <name>.csv by default"`
}

func (a Algorithm) IsTimed() bool {
	return a.Timed == nil || *a.Timed
}

type ResultsConfig struct {
	// Dir receives the archives once the run completes.
	Dir string `yaml:"dir" schema:"default=results"`
	// WorkDir holds the archives while the run is in progress and is the
	// working directory of the algorithms.
	WorkDir string `yaml:"work_dir" schema:"default=."`
}

type GeneratorConfig struct {
	Command     string   `yaml:"command" schema:"required"`
	Args        []string `yaml:"args"`
	MaxAttempts int      `yaml:"max_attempts" schema:"default=5"`
	Length      int      `yaml:"length" schema:"default=10000"`
	// OutputDir is where the generator writes its time_series_* entries.
	OutputDir string  `yaml:"output_dir"`
	Batches   []Batch `yaml:"batches" schema:"required,minItems=1"`
}

// Batch is one generated benchmark: every group is expanded into the Target directory.
type Batch struct {
	Target   string  `yaml:"target" schema:"required"`
	Database bool    `yaml:"database" description:"Pass -db to the generator"`
	Groups   []Group `yaml:"groups" schema:"required,minItems=1"`
}

// Group is a cartesian parameter grid. Order lists the dimensions from the
// outermost loop to the innermost.
type Group struct {
	Shapes     []string `yaml:"shapes" schema:"required,minItems=1"`
	Heights    []string `yaml:"heights" schema:"required,minItems=1"`
	Randomness []string `yaml:"randomness" schema:"required,minItems=1"`
	Sizes      []string `yaml:"sizes" schema:"required,minItems=1"`
	Windows    []string `yaml:"windows" schema:"required,minItems=1"`
	Order      []string `yaml:"order" schema:"enum=shape|height|randomness|size|window"`
}
