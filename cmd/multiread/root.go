package main

// Notes on program structure
// --------------------------
//
// multiread uses subcommands to invoke specific functionalities of the
// program. Each subcommand is implemented by a function named after the
// command, in a file of the same name (e.g. the "cat" command is implemented
// by the cat function in cat.go).
//
// The usage message for each command is declared by a constant starting with
// the command name and followed by the suffix "Usage". The usage message
// contains a "Usage:	multiread <command>" section presenting the structure
// of the command. Note the tabulation separating "Usage:" and "multiread".

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

const rootUsage = `multiread - concatenate ordered byte segments

   multiread exposes an ordered list of segments (plain or compressed files)
   as one logical byte stream, and ships a few commands built on that stream.

Example:

   $ multiread cat part-1.txt part-2.txt part-3.txt
   ...

   $ multiread lines -z zstd chunk-0.zst chunk-1.zst
   1275

For a list of commands available, run 'multiread help'.`

// root is the multiread entrypoint.
func root(ctx context.Context, args ...string) int {
	if len(args) == 0 {
		fmt.Println(rootUsage)
		return 0
	}

	cmd, args := args[0], args[1:]

	var err error
	switch cmd {
	case "cat":
		err = cat(ctx, args)
	case "help":
		err = help(ctx, args)
	case "lines":
		err = lines(ctx, args)
	case "version":
		err = version(ctx, args)
	default:
		err = unknown(ctx, cmd)
	}

	switch e := err.(type) {
	case nil:
		return 0
	case exitCode:
		return int(e)
	case usage:
		fmt.Fprintf(os.Stderr, "%s\n", e)
		return 2
	default:
		fmt.Fprintf(os.Stderr, "ERR: multiread %s: %s\n", cmd, err)
		return 1
	}
}

// exitCode is an error type returned from command functions to indicate the
// exit code that should be returned by the program.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit: %d", e)
}

// usage is an error type returned from command functions to indicate a usage
// error.
//
// Usage errors cause the program to exit with status code 2.
type usage string

func usageError(msg string, args ...any) error {
	return usage(fmt.Sprintf(msg, args...))
}

func (e usage) Error() string {
	return string(e)
}

func newFlagSet(cmd, usage string) *flag.FlagSet {
	usage = strings.TrimSpace(usage)
	flagSet := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() { fmt.Println(usage) }
	return flagSet
}

// parseFlags is a greedy parser which consumes all options known to f, so
// options may appear before and after positional arguments. It returns the
// positional arguments that remain.
func parseFlags(f *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := f.Parse(args); err != nil {
			if err == flag.ErrHelp {
				return nil, exitCode(0)
			}
			return nil, usageError("%s", err)
		}
		if args = f.Args(); len(args) == 0 {
			return positional, nil
		}
		i := slices.IndexFunc(args, func(s string) bool {
			return strings.HasPrefix(s, "-")
		})
		if i < 0 {
			i = len(args)
		} else if args[i] == "-" {
			i++
		}
		if i == 0 {
			panic("parsing command line arguments did not error on " + args[0])
		}
		positional = append(positional, args[:i]...)
		args = args[i:]
	}
}

func boolVar(f *flag.FlagSet, dst *bool, name string, alias ...string) {
	f.BoolVar(dst, name, *dst, "")
	for _, name := range alias {
		f.BoolVar(dst, name, *dst, "")
	}
}

func stringVar(f *flag.FlagSet, dst *string, name string, alias ...string) {
	f.StringVar(dst, name, *dst, "")
	for _, name := range alias {
		f.StringVar(dst, name, *dst, "")
	}
}

func customVar(f *flag.FlagSet, dst flag.Value, name string, alias ...string) {
	f.Var(dst, name, "")
	for _, name := range alias {
		f.Var(dst, name, "")
	}
}
