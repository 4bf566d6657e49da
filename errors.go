package lazyvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChunkSize is returned when the chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrInitTypeMismatch is returned when WithInit was given a function for
	// a different element type than the vector being built.
	ErrInitTypeMismatch = errors.New("init function does not match element type")

	// ErrIndexOutOfRange matches every *IndexOutOfRangeError via errors.Is.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexOutOfRangeError is the panic value for an element access with an
// index outside [0, Len()).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("lazyvec: index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

// NegativeSizeError is the panic value for Resize with a negative size.
type NegativeSizeError struct {
	Size int
}

func (e *NegativeSizeError) Error() string {
	return fmt.Sprintf("lazyvec: negative size %d", e.Size)
}

// AllocationError is the panic value when the memory budget refuses a chunk.
//
// The original underlying error can be accessed via errors.Unwrap.
type AllocationError struct {
	Chunk int
	Bytes int64
	cause error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("lazyvec: allocate chunk %d (%d bytes): %v", e.Chunk, e.Bytes, e.cause)
}

func (e *AllocationError) Unwrap() error { return e.cause }
