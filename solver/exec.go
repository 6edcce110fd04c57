// SPDX-License-Identifier: MIT
// Package: pinlat/solver
//
// exec.go — Exec runner over os/exec.
//
// Contract:
//   - Args(dir) is pure; Run(ctx, dir) executes Args(abs(dir)) inside abs(dir).
//   - Cancelling ctx kills the process.
//   - Output goes to the configured writers (io.Discard by default).

package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultBinary is the solver executable looked up on PATH.
const DefaultBinary = "openmc"

var (
	// ErrBinaryNotFound indicates the solver executable could not be resolved.
	ErrBinaryNotFound = errors.New("solver: binary not found")

	// ErrSolverFailed indicates the solver exited unsuccessfully.
	ErrSolverFailed = errors.New("solver: run failed")
)

// Runner executes the solver on a directory of input files.
type Runner interface {
	Run(ctx context.Context, dir string) error
}

// Option customizes Exec.
type Option func(*Exec)

// WithBinary sets the executable name or path. Panics on "".
func WithBinary(bin string) Option {
	if bin == "" {
		panic("solver: WithBinary(\"\")")
	}

	return func(e *Exec) { e.binary = bin }
}

// WithThreads sets the OpenMP thread count. 0 leaves the solver default.
// Panics on negative n.
func WithThreads(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("solver: WithThreads(%d)", n))
	}

	return func(e *Exec) { e.threads = n }
}

// WithPlotMode runs the geometry plotter instead of a transport calculation.
func WithPlotMode() Option {
	return func(e *Exec) { e.plot = true }
}

// WithOutput sets the writers receiving the solver's stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(e *Exec) {
		e.stdout = orDiscard(stdout)
		e.stderr = orDiscard(stderr)
	}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}

	return func(e *Exec) { e.log = l }
}

// Exec runs the solver as a child process.
type Exec struct {
	binary  string
	threads int
	plot    bool
	stdout  io.Writer
	stderr  io.Writer
	log     *zap.Logger
}

var _ Runner = (*Exec)(nil)

// NewExec returns an Exec runner.
func NewExec(opts ...Option) *Exec {
	e := &Exec{
		binary: DefaultBinary,
		stdout: io.Discard,
		stderr: io.Discard,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Binary returns the configured executable.
func (e *Exec) Binary() string { return e.binary }

// Args returns the argument vector (without the binary) for dir.
func (e *Exec) Args(dir string) []string {
	var args []string
	if e.plot {
		args = append(args, "-p")
	}
	if e.threads > 0 {
		args = append(args, "-s", strconv.Itoa(e.threads))
	}

	return append(args, dir)
}

// Run executes the solver with dir as both working and input directory.
// A relative dir is resolved against the current directory first.
func (e *Exec) Run(ctx context.Context, dir string) error {
	path, err := exec.LookPath(e.binary)
	if err != nil {
		return fmt.Errorf("Run: %q: %w", e.binary, errors.Join(ErrBinaryNotFound, err))
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	args := e.Args(dir)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	log := e.log.With(zap.String("binary", path), zap.Strings("args", args))
	log.Info("starting solver")
	start := time.Now()
	if err := cmd.Run(); err != nil {
		log.Error("solver failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("Run: %w", errors.Join(ErrSolverFailed, ctxErr))
		}

		return fmt.Errorf("Run: %w", errors.Join(ErrSolverFailed, err))
	}
	log.Info("solver finished", zap.Duration("elapsed", time.Since(start)))

	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}
