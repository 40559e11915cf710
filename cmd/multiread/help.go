package main

import (
	"context"
	"fmt"
	"strings"
)

const helpUsage = `
Usage:	multiread <command> [options]

Commands:
   cat      Write the concatenation of segments to standard output
   help     Show usage information about multiread commands
   lines    Count lines across segments
   version  Show the version of multiread

For help about a specific command, run 'multiread help <command>'.
`

func help(ctx context.Context, args []string) error {
	flagSet := newFlagSet("multiread help", helpUsage)
	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(strings.TrimSpace(helpUsage))
		return nil
	}

	for _, cmd := range args {
		var usage string
		switch cmd {
		case "cat":
			usage = catUsage
		case "help":
			usage = helpUsage
		case "lines":
			usage = linesUsage
		case "version":
			usage = versionUsage
		default:
			return unknown(ctx, cmd)
		}
		fmt.Println(strings.TrimSpace(usage))
	}
	return nil
}
