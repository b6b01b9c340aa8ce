package spec

import (
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/DjordjeVuckovic/motif-bench/internal/apperr"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/layout"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLength      = 10000
	DefaultResultsDir  = "results"
	DefaultMaxAttempts = 5
)

// Grid dimensions, usable in Group.Order and as generator placeholders.
const (
	DimShape      = "shape"
	DimHeight     = "height"
	DimRandomness = "randomness"
	DimSize       = "size"
	DimWindow     = "window"
)

// Algorithm names become archive file names.
var validName = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

var DefaultOrder = []string{DimShape, DimHeight, DimRandomness, DimSize, DimWindow}

var DefaultGeneratorArgs = []string{
	"-rd", "{{randomness}}",
	"-l", "{{length}}",
	"-w", "{{window}}",
	"-lm", "{{shape}}", "{{size}}", "{{height}}",
}

func LoadFromFile(path string) (*BenchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*BenchSpec, error) {
	var s BenchSpec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse spec YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Names returns the algorithm names in plan order.
func (s *BenchSpec) Names() []string {
	names := make([]string, len(s.Algorithms))
	for i, a := range s.Algorithms {
		names[i] = a.Name
	}
	return names
}

func (s *BenchSpec) Layout() layout.Layout {
	return layout.New(s.Cases.Dir, s.Cases.Prefix)
}

func validate(s *BenchSpec) error {
	if s.Cases.Dir == "" {
		return apperr.NewValidation("spec has no cases dir")
	}
	if s.Cases.Begin < 0 {
		return apperr.NewValidation(fmt.Sprintf("cases begin must not be negative, got %d", s.Cases.Begin))
	}
	if s.Cases.Count < 0 {
		return apperr.NewValidation(fmt.Sprintf("cases count must not be negative, got %d", s.Cases.Count))
	}
	if s.Cases.Prefix == "" {
		s.Cases.Prefix = layout.DefaultPrefix
	}
	if s.Cases.Length <= 0 {
		s.Cases.Length = DefaultLength
	}

	if len(s.Algorithms) == 0 {
		return apperr.NewValidation("spec has no algorithms")
	}
	seen := make(map[string]bool, len(s.Algorithms))
	for i := range s.Algorithms {
		a := &s.Algorithms[i]
		if a.Name == "" {
			return apperr.NewValidation(fmt.Sprintf("algorithm at index %d has no name", i))
		}
		if !validName.MatchString(a.Name) {
			return apperr.NewValidation(fmt.Sprintf("algorithm name %q may only hold letters, digits, '_', '.' and '-'", a.Name))
		}
		if seen[a.Name] {
			return apperr.NewValidation(fmt.Sprintf("algorithm %q declared twice", a.Name))
		}
		seen[a.Name] = true
		if a.Command == "" {
			return apperr.NewValidation(fmt.Sprintf("algorithm %q has no command", a.Name))
		}
		if a.Artifact == "" {
			a.Artifact = a.Name + ".csv"
		}
	}

	if s.Results.Dir == "" {
		s.Results.Dir = DefaultResultsDir
	}
	if s.Results.WorkDir == "" {
		s.Results.WorkDir = "."
	}

	if s.Generator != nil {
		return validateGenerator(s.Generator)
	}
	return nil
}

func validateGenerator(g *GeneratorConfig) error {
	if g.Command == "" {
		return apperr.NewValidation("generator has no command")
	}
	if g.MaxAttempts <= 0 {
		g.MaxAttempts = DefaultMaxAttempts
	}
	if g.Length <= 0 {
		g.Length = DefaultLength
	}
	if len(g.Args) == 0 {
		g.Args = DefaultGeneratorArgs
	}
	if g.OutputDir == "" {
		g.OutputDir = "."
	}
	for i := range g.Batches {
		b := &g.Batches[i]
		if b.Target == "" {
			return apperr.NewValidation(fmt.Sprintf("generator batch at index %d has no target", i))
		}
		for j := range b.Groups {
			grp := &b.Groups[j]
			if len(grp.Order) == 0 {
				grp.Order = DefaultOrder
			}
			if err := validateOrder(grp.Order); err != nil {
				return apperr.NewValidationWrap(fmt.Sprintf("batch %q group %d", b.Target, j), err)
			}
		}
	}
	return nil
}

func validateOrder(order []string) error {
	if len(order) != len(DefaultOrder) {
		return fmt.Errorf("order must name all of %v", DefaultOrder)
	}
	for _, dim := range DefaultOrder {
		if !slices.Contains(order, dim) {
			return fmt.Errorf("order is missing dimension %q", dim)
		}
	}
	return nil
}
