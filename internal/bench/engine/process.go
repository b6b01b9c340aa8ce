package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ProcessRunner spawns the algorithm as a child process and streams its stdout.
type ProcessRunner struct {
	stderr io.Writer
}

func NewProcessRunner(stderr io.Writer) *ProcessRunner {
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ProcessRunner{stderr: stderr}
}

func (p *ProcessRunner) Run(ctx context.Context, inv Invocation) (*Execution, error) {
	if inv.Command == "" {
		return nil, fmt.Errorf("algorithm %q has no command", inv.Algorithm)
	}

	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stderr = p.stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe for %s: %w", inv.Algorithm, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", inv.Algorithm, err)
	}

	return &Execution{
		Output: stdout,
		wait: func() error {
			if err := cmd.Wait(); err != nil {
				return fmt.Errorf("%s exited: %w", inv.Algorithm, err)
			}
			return nil
		},
	}, nil
}

func (p *ProcessRunner) Name() string { return "process" }
