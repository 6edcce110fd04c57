// Package solver runs the Monte Carlo code on an exported model directory.
//
// Runner is the seam between the builder and the external process; Exec is
// the os/exec implementation. Exec resolves the binary on PATH, runs it
// inside the model directory and maps failures onto ErrBinaryNotFound and
// ErrSolverFailed. The exit status stays reachable through errors.As on
// *exec.ExitError.
package solver
