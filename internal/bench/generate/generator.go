package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Generator produces one synthetic series with its metadata and plot files.
type Generator interface {
	Generate(ctx context.Context, args []string) error
}

// ProcessGenerator runs the external generator executable.
type ProcessGenerator struct {
	command string
	dir     string
	stdout  io.Writer
	stderr  io.Writer
}

func NewProcessGenerator(command, dir string, stdout, stderr io.Writer) *ProcessGenerator {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ProcessGenerator{command: command, dir: dir, stdout: stdout, stderr: stderr}
}

func (g *ProcessGenerator) Generate(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, g.command, args...)
	cmd.Dir = g.dir
	cmd.Stdout = g.stdout
	cmd.Stderr = g.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", g.command, err)
	}
	return nil
}
