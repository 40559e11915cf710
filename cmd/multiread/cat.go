package main

import (
	"context"
	"io"
	"os"

	"github.com/stealthrocket/multiread"
	"github.com/stealthrocket/multiread/segment"
)

const catUsage = `
Usage:	multiread cat [options] [file...]

   The cat sub-command writes the concatenation of the named segments to
   standard output, in argument order, draining each segment before starting
   the next. Segments may also be listed in a YAML manifest passed with the
   -f option, in which case the manifest segments come before the ones named
   on the command line.

Example:

   $ multiread cat -z snappy part-1.sz part-2.sz > whole.txt

Options:
   -f, --manifest path      Read a segment list from the YAML manifest at path
   -h, --help               Show this usage information
   -z, --compression type   Compression of the named files; one of none, snappy or zstd (default to none)
`

func cat(ctx context.Context, args []string) error {
	var (
		manifestPath string
		compression  = segment.Uncompressed
	)

	flagSet := newFlagSet("multiread cat", catUsage)
	stringVar(flagSet, &manifestPath, "f", "manifest")
	customVar(flagSet, &compression, "z", "compression")
	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	sources, err := openSources(manifestPath, compression, args)
	if err != nil {
		return err
	}
	r := multiread.MultiReadCloser(sources...)
	defer r.Close()

	_, err = io.Copy(os.Stdout, r)
	return err
}

// openSources builds the ordered source list of a command: the manifest
// segments (if a manifest was given) followed by the files named on the
// command line. On error, nothing is left open.
func openSources(manifestPath string, compression segment.Compression, paths []string) ([]io.ReadCloser, error) {
	var sources []io.ReadCloser
	if manifestPath != "" {
		m, err := segment.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		if sources, err = m.Open(); err != nil {
			return nil, err
		}
	}
	more, err := segment.Open(compression, paths...)
	if err != nil {
		closeSources(sources)
		return nil, err
	}
	return append(sources, more...), nil
}

func closeSources(sources []io.ReadCloser) {
	for _, c := range sources {
		c.Close()
	}
}
