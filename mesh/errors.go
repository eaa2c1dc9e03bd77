package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrIO          = errors.New("io error")
	ErrFormat      = errors.New("format error")
	ErrIndex       = errors.New("index error")
	ErrTopology    = errors.New("topology error")
	ErrOrientation = errors.New("orientation error")
)

// LoadError locates a failure within one of the mesh files. Line is 1-based,
// zero when the failure is not tied to a line (missing file, empty prefix).
type LoadError struct {
	File string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case e.File == "":
		return e.Err.Error()
	case e.Line == 0:
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ElementError reports a triangle rejected by validation after all three
// dimensions are built
type ElementError struct {
	Index int
	Area  float64
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("triangle %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Kind returns the sentinel classifying err, or nil if err is not a mesh error
func Kind(err error) error {
	for _, k := range []error{ErrIO, ErrFormat, ErrIndex, ErrTopology, ErrOrientation} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
