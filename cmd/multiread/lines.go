package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/stealthrocket/multiread"
	"github.com/stealthrocket/multiread/segment"
	"golang.org/x/sync/errgroup"
)

const linesUsage = `
Usage:	multiread lines [options] [file...]

   The lines sub-command counts the lines spread across the named segments.
   By default the segments are chained into one logical stream and counted in
   a single pass. With the --no-chain option each segment is counted on its
   own (concurrently) and the counts are summed; the totals agree as long as
   every segment ends with a newline.

Options:
   -f, --manifest path      Read a segment list from the YAML manifest at path
   -h, --help               Show this usage information
   -n, --no-chain           Count each segment separately instead of chaining them
   -z, --compression type   Compression of the named files; one of none, snappy or zstd (default to none)
`

func lines(ctx context.Context, args []string) error {
	var (
		manifestPath string
		compression  = segment.Uncompressed
		noChain      bool
	)

	flagSet := newFlagSet("multiread lines", linesUsage)
	stringVar(flagSet, &manifestPath, "f", "manifest")
	customVar(flagSet, &compression, "z", "compression")
	boolVar(flagSet, &noChain, "n", "no-chain")
	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	sources, err := openSources(manifestPath, compression, args)
	if err != nil {
		return err
	}

	var total int64
	if noChain {
		defer closeSources(sources)

		g, _ := errgroup.WithContext(ctx)
		counts := make([]int64, len(sources))
		for i, r := range sources {
			i, r := i, r
			g.Go(func() error {
				n, err := countLines(r)
				counts[i] = n
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, n := range counts {
			total += n
		}
	} else {
		r := multiread.MultiReadCloser(sources...)
		defer r.Close()

		if total, err = countLines(r); err != nil {
			return err
		}
	}

	fmt.Println(total)
	return nil
}

// countLines counts the lines of r; a trailing line without a final newline
// counts as one line.
func countLines(r io.Reader) (n int64, err error) {
	var last byte = '\n'
	buf := make([]byte, 32*1024)
	for {
		rn, err := r.Read(buf)
		if rn > 0 {
			n += int64(bytes.Count(buf[:rn], []byte{'\n'}))
			last = buf[rn-1]
		}
		if err == io.EOF {
			if last != '\n' {
				n++
			}
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}
