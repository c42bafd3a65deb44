// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package getopt declares command-line options, parses argv with a
// GNU-style grammar and reports every token the grammar did not account
// for.
//
// A program registers its options once and hands control to an App:
//
//	app := getopt.NewApp()
//	app.Registry().
//	    Add("h|help", getopt.Flag, false, getopt.WithDescription("Show help")).
//	    Add("o|output", getopt.RequiredValue, true, getopt.WithDescription("Output file"))
//
//	os.Exit(app.Run(ctx, os.Args, func(ctx context.Context, inv *getopt.Invocation) (int, error) {
//	    out, _ := inv.Registry.Value("output")
//	    fmt.Println(out.String(), inv.Unparsed.Positional())
//	    return 0, nil
//	}))
//
// # Option grammar
//
// An option name is "s" (short only), "long" (long only) or "s|long".
// Arity is one of:
//   - Flag: -v, --verbose. Never consumes the next token.
//   - RequiredValue: -o file, -ofile, -o=file, --output file, --output=file.
//   - OptionalValue: -o, -ofile, --output, --output=file. A separate
//     token is never taken as the value.
//
// Repeating an option accumulates its occurrences instead of overwriting.
//
// # Reconciliation
//
// The native grammar reports which option got which value but not which
// argv tokens it consumed. Reconcile walks argv again and returns the
// tokens that were not part of a recognized option; Classify sorts them
// into unknown options and positional arguments. Everything after "--"
// is positional.
//
// # Exit status
//
// App.Run returns ExitBadUsage for ambiguous, invalid or unknown options
// and ExitFailure when the entry point fails. Both print usage text or a
// message first.
package getopt
