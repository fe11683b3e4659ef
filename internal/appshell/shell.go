// Package appshell is the process wrapper shared by the binaries: signal
// handling, default arguments and the final exit.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"rnadesign/internal/cmdutil"
)

// RunFunc is an application entry point returning an exit code.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with os.Args and exits. SIGINT and SIGTERM cancel the
// context; a run that still reports success after cancellation exits 130.
func Main(run RunFunc) {
	os.Exit(Exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

// Exec is Main without the process exit.
func Exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}
	return code
}
