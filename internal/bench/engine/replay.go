package engine

import (
	"context"
	"fmt"
	"os"
)

// ReplayRunner feeds back the raw candidate stream saved by an earlier run, so
// cases can be rescored without executing the algorithms again.
type ReplayRunner struct{}

func NewReplayRunner() *ReplayRunner {
	return &ReplayRunner{}
}

func (ReplayRunner) Run(_ context.Context, inv Invocation) (*Execution, error) {
	f, err := os.Open(inv.Artifact)
	if err != nil {
		return nil, fmt.Errorf("open saved output of %s: %w", inv.Algorithm, err)
	}
	return &Execution{Output: f, Recorded: true, wait: f.Close}, nil
}

func (ReplayRunner) Name() string { return "replay" }
