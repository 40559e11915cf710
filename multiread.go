// Package multiread exposes an ordered collection of byte sources as one
// logical stream which yields the concatenation of their contents.
//
// The composite drains each source before moving to the next, so the bytes
// read from it are exactly the bytes of the first source, then the second,
// and so on. It differs from io.MultiReader on two points: a single call to
// Read never crosses a source boundary, and reading into an empty buffer
// never advances past the current source, so callers probing with zero-length
// reads cannot skip data.
package multiread

import (
	"io"
	"slices"
)

// MultiReader returns the logical concatenation of readers, in argument
// order. The returned reader reports io.EOF only once every input has been
// exhausted; a non-EOF error from the active source is returned verbatim and
// leaves the stream position untouched, so the read may be retried.
//
// The composite takes ownership of the readers: the caller must not read from
// them directly afterwards or the concatenation will have holes.
func MultiReader(readers ...io.Reader) io.Reader {
	return &multiReader{readers: slices.Clone(readers)}
}

type multiReader struct {
	readers []io.Reader
}

func (m *multiReader) Read(b []byte) (n int, err error) {
	for len(m.readers) > 0 {
		if len(b) == 0 {
			// Zero bytes were requested; satisfying that trivially must not
			// be confused with exhaustion of the current source.
			return 0, nil
		}
		n, err = m.readers[0].Read(b)
		if err == io.EOF {
			m.readers = m.readers[1:]
		}
		if n > 0 || err != io.EOF {
			if err == io.EOF && len(m.readers) > 0 {
				// The current source is done but the next ones may still
				// produce bytes.
				err = nil
			}
			return n, err
		}
	}
	return 0, io.EOF
}

// MultiReadCloser is like MultiReader but also takes responsibility for
// releasing the sources: Close closes every input, drained or not, and
// returns the first error encountered. Close is idempotent.
func MultiReadCloser(readers ...io.ReadCloser) io.ReadCloser {
	sources := make([]io.Reader, len(readers))
	for i, r := range readers {
		sources[i] = r
	}
	return &multiReadCloser{
		reader:  MultiReader(sources...),
		closers: slices.Clone(readers),
	}
}

type multiReadCloser struct {
	reader  io.Reader
	closers []io.ReadCloser
}

func (m *multiReadCloser) Read(b []byte) (int, error) {
	return m.reader.Read(b)
}

func (m *multiReadCloser) Close() (err error) {
	for _, c := range m.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	m.closers = nil
	return err
}
