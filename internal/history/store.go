// Package history records generator runs so past output can be listed.
package history

import "time"

// File is one icon written during a run.
type File struct {
	Path  string // relative to the run root
	Size  int    // canvas edge in pixels
	Bytes int64
}

// Run is one invocation of the generator.
type Run struct {
	Time   time.Time
	Root   string
	Source string
	Files  []File
	Err    string // empty on success
}

// OK reports whether the run finished without error.
func (r Run) OK() bool { return r.Err == "" }

// Store abstracts run history storage.
type Store interface {
	Record(run Run) error
	Recent(n int) ([]Run, error) // newest first, n <= 0 means all
	Close() error
	Path() string
}
