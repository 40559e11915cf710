// Package segment opens the byte sources that feed a composite stream.
//
// The composite reader itself never opens or closes anything; this package is
// the collaborator that turns names on disk into the ordered list of
// io.ReadCloser it consumes, decoding per-segment compression on the way.
package segment

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies the codec a segment is stored with.
type Compression string

const (
	Uncompressed Compression = "none"
	Snappy       Compression = "snappy"
	Zstd         Compression = "zstd"
)

func (c Compression) String() string {
	return string(c)
}

// Set implements flag.Value so a Compression can be used directly as a
// command line option.
func (c *Compression) Set(value string) error {
	switch v := Compression(value); v {
	case Uncompressed, Snappy, Zstd:
		*c = v
		return nil
	default:
		return fmt.Errorf("unsupported compression type: %q (not one of none, snappy, zstd)", value)
	}
}

// A Segment names one byte source of a composite stream.
type Segment struct {
	Path        string      `yaml:"path"`
	Compression Compression `yaml:"compression,omitempty"`
}

// Open opens the segment file and wraps it with the decoder matching its
// compression. Closing the result closes the decoder and the file.
func (s *Segment) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	r, err := Reader(f, s.Compression)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// Reader wraps r with the decoder for the given compression. The zero value
// of Compression is treated as Uncompressed so segments may omit the field.
func Reader(r io.ReadCloser, compression Compression) (io.ReadCloser, error) {
	switch compression {
	case Uncompressed, "":
		return r, nil
	case Snappy:
		return &readCloser{reader: snappy.NewReader(r), close: r.Close}, nil
	case Zstd:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return &readCloser{
			reader: d,
			close: func() error {
				d.Close()
				return r.Close()
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown compression format: %q", compression)
	}
}

type readCloser struct {
	reader io.Reader
	close  func() error
}

func (r *readCloser) Read(b []byte) (int, error) { return r.reader.Read(b) }
func (r *readCloser) Close() error               { return r.close() }

// Open opens the named files in order, applying the same compression to each.
// If any segment fails to open, the segments already opened are closed before
// the error is returned, so no descriptors leak.
func Open(compression Compression, paths ...string) ([]io.ReadCloser, error) {
	sources := make([]io.ReadCloser, 0, len(paths))
	for _, path := range paths {
		s := Segment{Path: path, Compression: compression}
		r, err := s.Open()
		if err != nil {
			closeAll(sources)
			return nil, err
		}
		sources = append(sources, r)
	}
	return sources, nil
}

func closeAll(sources []io.ReadCloser) {
	for _, c := range sources {
		c.Close()
	}
}
