package generate

import "fmt"

// InitError indicates the model backend could not be set up. No directory
// or file has been created when it is returned.
type InitError struct {
	Model string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initialize model %s: %v", e.Model, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// SampleError indicates generation stopped at a sample. Batches flushed
// before Batch remain on disk.
type SampleError struct {
	Batch int // zero-based batch number
	Index int // zero-based sample index
	Err   error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("generate sample %d (batch %d): %v", e.Index, e.Batch+1, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }
