// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command getopt parses a program's arguments against options declared in
// a TOML or YAML file and prints the result for shell scripts.
//
//	eval set -- "$(getopt --spec opts.toml -- "$0" "$@")"
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/getopt/pkg/getopt"
	"github.com/yeetrun/getopt/pkg/optfile"
	"github.com/yeetrun/getopt/pkg/sigreg"
)

//go:generate go run github.com/google/addlicense -c AUTHORS -l bsd -y 2025 -ignore "**/_examples/**" -ignore "**/testdata/**" ../..

// exitSetup is returned when the declaration file cannot be used.
const exitSetup = 3

type flagsParsed struct {
	Spec         string `flag:"spec" short:"s" help:"Option declaration file (.toml, .yaml or .yml)"`
	Format       string `flag:"format" short:"f" help:"Output format: shell, json, yaml or env (GETOPT_FORMAT)"`
	EnvPrefix    string `flag:"env-prefix" default:"GETOPT_" help:"Variable name prefix for env output"`
	AllowUnknown bool   `flag:"allow-unknown" help:"Pass unknown options through"`
	Help         bool   `flag:"help" short:"h" help:"Show this help"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := sigreg.Handle(ctx, sigreg.Interrupt, func(sigreg.Signal) { os.Exit(130) }); err != nil {
		log.Printf("failed to install interrupt handler: %v", err)
	}
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	result, err := yargs.ParseFlags[flagsParsed](args)
	if err != nil {
		fmt.Fprintf(stderr, "getopt: %v\n\n", err)
		printHelp(stderr)
		return getopt.ExitBadUsage
	}
	flags := result.Flags
	if flags.Help {
		printHelp(stdout)
		return getopt.ExitOK
	}
	if flags.Spec == "" || len(result.Args) > 0 || len(result.RemainingArgs) == 0 {
		printHelp(stderr)
		return getopt.ExitBadUsage
	}

	format := flags.Format
	if format == "" {
		format = os.Getenv("GETOPT_FORMAT")
	}
	enc, err := encoderFor(format, flags.EnvPrefix)
	if err != nil {
		fmt.Fprintf(stderr, "getopt: %v\n", err)
		return getopt.ExitBadUsage
	}

	decl, err := optfile.Load(flags.Spec)
	if err != nil {
		fmt.Fprintf(stderr, "getopt: %v\n", err)
		return exitSetup
	}
	opts := append(decl.AppOptions(),
		getopt.WithOutput(stderr, stderr),
		getopt.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(stderr, "getopt: warning: "+format+"\n", args...)
		}),
	)
	if flags.AllowUnknown {
		opts = append(opts, getopt.WithAllowUnknown(true))
	}
	app := getopt.NewApp(opts...)
	if err := decl.Register(app.Registry()); err != nil {
		fmt.Fprintf(stderr, "getopt: %s: %v\n", flags.Spec, err)
		return exitSetup
	}

	return app.Run(ctx, result.RemainingArgs, func(ctx context.Context, inv *getopt.Invocation) (int, error) {
		if missing := inv.Registry.Missing(); len(missing) > 0 {
			fmt.Fprintf(stderr, "Missing required option %q\n\n", displayName(missing[0]))
			app.Usage(inv.Argv[0])
			return getopt.ExitBadUsage, nil
		}
		if err := enc(stdout, newReport(inv)); err != nil {
			return 0, err
		}
		return getopt.ExitOK, nil
	})
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `getopt - parse arguments against declared options

USAGE:
    getopt --spec FILE [--format shell|json|yaml|env] [--allow-unknown] -- PROG [ARGS...]

OPTIONS:
    -s, --spec FILE          Option declaration file (.toml, .yaml or .yml)
    -f, --format FORMAT      Output format: shell, json, yaml or env (GETOPT_FORMAT)
        --env-prefix PREFIX  Variable name prefix for env output (default GETOPT_)
        --allow-unknown      Pass unknown options through
    -h, --help               Show this help

EXIT STATUS:
    0 arguments parsed, 1 no arguments, 2 bad usage, 3 bad declaration file
`)
}

func displayName(o *getopt.Option) string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + o.Short
}
