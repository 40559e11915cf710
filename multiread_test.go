package multiread_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stealthrocket/multiread"
	"github.com/stealthrocket/multiread/internal/assert"
)

func TestConcatenation(t *testing.T) {
	r := multiread.MultiReader(
		strings.NewReader("ab"),
		strings.NewReader(""),
		strings.NewReader("cde"),
	)

	b, err := io.ReadAll(r)
	assert.OK(t, err)
	assert.Equal(t, string(b), "abcde")
}

func TestEmptyComposite(t *testing.T) {
	r := multiread.MultiReader()
	buf := make([]byte, 8)

	for i := 0; i < 3; i++ {
		n, err := r.Read(buf)
		assert.Equal(t, n, 0)
		assert.Error(t, err, io.EOF)
	}
}

func TestOnlyEmptySources(t *testing.T) {
	sources := make([]io.Reader, 1000)
	for i := range sources {
		sources[i] = strings.NewReader("")
	}
	r := multiread.MultiReader(sources...)

	n, err := r.Read(make([]byte, 1))
	assert.Equal(t, n, 0)
	assert.Error(t, err, io.EOF)
}

func TestReadsStopAtSourceBoundary(t *testing.T) {
	r := multiread.MultiReader(
		strings.NewReader("abc"),
		strings.NewReader("defg"),
	)
	buf := make([]byte, 16)

	n, err := r.Read(buf)
	assert.OK(t, err)
	assert.Equal(t, string(buf[:n]), "abc")

	n, err = r.Read(buf)
	assert.OK(t, err)
	assert.Equal(t, string(buf[:n]), "defg")

	n, err = r.Read(buf)
	assert.Equal(t, n, 0)
	assert.Error(t, err, io.EOF)
}

func TestZeroLengthRead(t *testing.T) {
	r := multiread.MultiReader(strings.NewReader("xy"))

	// Zero-length reads must not advance past the current source.
	for i := 0; i < 3; i++ {
		n, err := r.Read(nil)
		assert.Equal(t, n, 0)
		assert.OK(t, err)
	}

	b, err := io.ReadAll(r)
	assert.OK(t, err)
	assert.Equal(t, string(b), "xy")
}

func TestCompositeOfComposites(t *testing.T) {
	nested := multiread.MultiReader(
		multiread.MultiReader(
			strings.NewReader("ab"),
			strings.NewReader("cd"),
		),
		strings.NewReader("ef"),
	)

	b, err := io.ReadAll(nested)
	assert.OK(t, err)
	assert.Equal(t, string(b), "abcdef")
}

var errTransient = errors.New("transient failure")

// flakyReader fails its fail-at'th read and lets every other read through,
// mimicking a source with a transient fault.
type flakyReader struct {
	reader io.Reader
	readNo int
	failAt int
}

func (r *flakyReader) Read(b []byte) (int, error) {
	if r.readNo++; r.readNo == r.failAt {
		return 0, errTransient
	}
	return r.reader.Read(b)
}

func TestTransientErrorRetry(t *testing.T) {
	r := multiread.MultiReader(
		strings.NewReader("head,"),
		&flakyReader{reader: strings.NewReader("body,"), failAt: 2},
		strings.NewReader("tail"),
	)

	var out []byte
	buf := make([]byte, 3)
	retries := 0
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			// The error must surface verbatim and leave the stream position
			// untouched, so retrying loses no bytes.
			assert.Error(t, err, errTransient)
			retries++
		}
	}

	assert.Equal(t, retries, 1)
	assert.Equal(t, string(out), "head,body,tail")
}

var errClose = errors.New("close failed")

type closeRecorder struct {
	io.Reader
	closed int
	err    error
}

func (c *closeRecorder) Close() error {
	c.closed++
	return c.err
}

func TestMultiReadCloser(t *testing.T) {
	a := &closeRecorder{Reader: strings.NewReader("ab")}
	b := &closeRecorder{Reader: strings.NewReader("cd"), err: errClose}
	c := &closeRecorder{Reader: strings.NewReader("ef")}

	r := multiread.MultiReadCloser(a, b, c)

	buf := make([]byte, 2)
	n, err := r.Read(buf)
	assert.OK(t, err)
	assert.Equal(t, string(buf[:n]), "ab")

	// Every source is closed, drained or not, and the first close error is
	// the one reported.
	assert.Error(t, r.Close(), errClose)
	assert.Equal(t, a.closed, 1)
	assert.Equal(t, b.closed, 1)
	assert.Equal(t, c.closed, 1)

	assert.OK(t, r.Close())
	assert.Equal(t, a.closed, 1)
}
