package main

import (
	"context"
	"io"
	"log"
	"os"
)

func init() {
	log.SetOutput(io.Discard)
}

func main() {
	os.Exit(root(context.Background(), os.Args[1:]...))
}
