package engine

import (
	"context"
	"io"
)

// Invocation is one algorithm run against one benchmark case.
type Invocation struct {
	Algorithm string
	Command   string
	Args      []string
	// Dir is the working directory of the child process.
	Dir string
	// Artifact is the path of the raw candidate stream saved for the case.
	Artifact string
}

// Execution is a started run. Output must be drained before Wait is called.
type Execution struct {
	Output io.Reader
	// Recorded is set when Output already comes from the saved artifact.
	Recorded bool
	wait     func() error
}

func NewExecution(output io.Reader, wait func() error) *Execution {
	return &Execution{Output: output, wait: wait}
}

func (e *Execution) Wait() error {
	if e.wait == nil {
		return nil
	}
	return e.wait()
}

type Runner interface {
	Run(ctx context.Context, inv Invocation) (*Execution, error)
	Name() string
}
