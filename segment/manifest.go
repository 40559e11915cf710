package segment

import (
	"io"
	"os"

	"github.com/stealthrocket/multiread"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description of an ordered list of segments forming one
// logical stream.
//
//	segments:
//	  - path: header.txt
//	  - path: body.zst
//	    compression: zstd
type Manifest struct {
	Segments []Segment `yaml:"segments"`
}

// ReadManifest reads and parses a manifest. Unknown fields are rejected; an
// empty document is a valid manifest with no segments.
func ReadManifest(r io.Reader) (*Manifest, error) {
	m := new(Manifest)
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(m); err != nil && err != io.EOF {
		return nil, err
	}
	return m, nil
}

// LoadManifest opens and reads the manifest file at path.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadManifest(f)
}

// Open opens every segment of the manifest, in order. On failure the
// already-opened prefix is closed before the error is returned.
func (m *Manifest) Open() ([]io.ReadCloser, error) {
	sources := make([]io.ReadCloser, 0, len(m.Segments))
	for i := range m.Segments {
		r, err := m.Segments[i].Open()
		if err != nil {
			closeAll(sources)
			return nil, err
		}
		sources = append(sources, r)
	}
	return sources, nil
}

// Concat opens every segment and returns their concatenation as a single
// stream which owns the segments: closing it closes them all.
func (m *Manifest) Concat() (io.ReadCloser, error) {
	sources, err := m.Open()
	if err != nil {
		return nil, err
	}
	return multiread.MultiReadCloser(sources...), nil
}
