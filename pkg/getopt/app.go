// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tailscale.com/types/logger"
)

// Exit statuses returned by App.Run.
const (
	ExitOK          = 0
	ExitUnsupported = 1
	ExitBadUsage    = 2
	ExitFailure     = 255
)

// Invocation is what the entry point receives for one run.
type Invocation struct {
	Argv     []string
	Parsed   Parsed
	Unparsed *Unparsed
	Registry *Registry
}

// MainFunc is the program entry point run by App.Run. The returned int is
// the exit status; a non-nil error is reported as an unhandled failure.
type MainFunc func(ctx context.Context, inv *Invocation) (int, error)

// App owns the registry and the results of one parse.
type App struct {
	name         string
	allowUnknown bool
	stdout       io.Writer
	stderr       io.Writer
	logf         logger.Logf
	hooks        UsageHooks

	reg      *Registry
	parsed   Parsed
	unparsed *Unparsed
}

// AppOption configures an App.
type AppOption func(*App)

// WithName sets the program name shown in usage text. It defaults to argv[0].
func WithName(name string) AppOption {
	return func(a *App) { a.name = name }
}

// WithAllowUnknown makes unknown options reach the entry point instead of
// aborting the run.
func WithAllowUnknown(allow bool) AppOption {
	return func(a *App) { a.allowUnknown = allow }
}

// WithOutput sets where usage text and messages are written.
func WithOutput(stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// WithLogf sets the logger used for registration warnings.
func WithLogf(logf logger.Logf) AppOption {
	return func(a *App) { a.logf = logf }
}

// WithUsageHooks sets the header, examples and footer of the usage text.
func WithUsageHooks(h UsageHooks) AppOption {
	return func(a *App) { a.hooks = h }
}

// NewApp returns an App with an empty registry.
func NewApp(opts ...AppOption) *App {
	a := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.reg = NewRegistry(a.logf)
	return a
}

// Registry returns the registry options are declared on.
func (a *App) Registry() *Registry { return a.reg }

// Parsed returns the native parse result of the last Run.
func (a *App) Parsed() Parsed { return a.parsed }

// Unparsed returns the leftover argv items of the last Run.
func (a *App) Unparsed() *Unparsed { return a.unparsed }

// Usage writes the usage text for the current program to the App's stdout.
func (a *App) Usage(argv0 string) {
	a.reg.WriteUsage(a.stdout, a.progName(argv0), a.hooks)
}

func (a *App) progName(argv0 string) string {
	if a.name != "" {
		return a.name
	}
	return argv0
}

// Run parses argv (program name first), then calls main and returns the
// exit status to hand to os.Exit.
func (a *App) Run(ctx context.Context, argv []string, main MainFunc) int {
	if main == nil {
		panic("getopt: nil MainFunc")
	}
	inv, err := a.Parse(argv)
	if err != nil {
		return a.reportParseError(argv, err)
	}
	return a.call(ctx, main, inv)
}

// Parse runs every parsing step of Run without calling an entry point.
func (a *App) Parse(argv []string) (*Invocation, error) {
	if len(argv) == 0 {
		return nil, ErrNotCommandLine
	}
	parsed, err := a.reg.Parse(argv[1:])
	if err != nil {
		return nil, err
	}
	if err := a.reg.Dispatch(parsed); err != nil {
		return nil, err
	}
	a.parsed = parsed
	a.unparsed = Classify(Reconcile(argv, parsed))

	if !a.allowUnknown {
		if opts := a.unparsed.Options(); len(opts) > 0 {
			return nil, &UsageError{
				Option: opts[0].Key,
				Reason: fmt.Sprintf("Unknown option %q", opts[0].Flag()),
			}
		}
	}
	return &Invocation{
		Argv:     argv,
		Parsed:   parsed,
		Unparsed: a.unparsed,
		Registry: a.reg,
	}, nil
}

func (a *App) reportParseError(argv []string, err error) int {
	if errors.Is(err, ErrNotCommandLine) {
		fmt.Fprintln(a.stderr, err)
		return ExitUnsupported
	}
	fmt.Fprintf(a.stdout, "%v\n\n", err)
	a.Usage(argv[0])
	return ExitBadUsage
}

func (a *App) call(ctx context.Context, main MainFunc, inv *Invocation) (code int) {
	defer func() {
		if p := recover(); p != nil {
			fmt.Fprintf(a.stdout, "Unhandled error in main: %v\n", p)
			code = ExitFailure
		}
	}()
	code, err := main(ctx, inv)
	if err != nil {
		fmt.Fprintf(a.stdout, "Unhandled error in main: %v\n", err)
		return ExitFailure
	}
	return code
}
