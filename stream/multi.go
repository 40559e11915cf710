package stream

import (
	"io"
	"slices"
)

// MultiReader returns the logical concatenation of readers, in argument
// order. Each source is drained before the next one is consulted, and a
// single call to Read never spans two sources. io.EOF is reported only once
// every source has been exhausted; any other error is surfaced verbatim
// without advancing, so the failed read may be retried in place.
//
// The composite owns the readers for its lifetime; it is itself a Reader[T],
// so composites nest.
func MultiReader[T any](readers ...Reader[T]) Reader[T] {
	return &multiReader[T]{readers: slices.Clone(readers)}
}

type multiReader[T any] struct {
	readers []Reader[T]
}

func (m *multiReader[T]) Read(values []T) (n int, err error) {
	for len(m.readers) > 0 {
		if len(values) == 0 {
			// An empty destination is trivially satisfied; it must not be
			// taken as exhaustion of the current source.
			return 0, nil
		}
		n, err = m.readers[0].Read(values)
		if err == io.EOF {
			m.readers = m.readers[1:]
		}
		if n > 0 || err != io.EOF {
			if err == io.EOF && len(m.readers) > 0 {
				err = nil
			}
			return n, err
		}
	}
	return 0, io.EOF
}
