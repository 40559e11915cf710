package main

import (
	"context"
)

const unknownCommand = `multiread %s: unknown command
For a list of commands available, run 'multiread help'.
`

func unknown(ctx context.Context, cmd string) error {
	return usageError(unknownCommand, cmd)
}
