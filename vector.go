package lazyvec

import (
	"iter"
	"unsafe"

	"github.com/hupe1980/lazyvec/internal/container"
)

// Vector is a resizable sequence whose storage is allocated lazily in
// fixed-size chunks.
//
// Resize only changes the logical size and the slot table. Element storage
// for a chunk is materialized on the first At, Get or Set inside it, and is
// released again once a shrink leaves the whole chunk out of range.
//
// A Vector is not safe for concurrent use. Element accessors may allocate,
// so even concurrent reads need external synchronization.
type Vector[T any] struct {
	table     *container.ChunkTable[T]
	chunkSize int
	size      int

	init       func(*T)
	chunkBytes int64

	logger   *Logger
	metrics  MetricsCollector
	acquirer MemoryAcquirer

	chunkAllocs   uint64
	chunkReleases uint64
}

// Stats is a snapshot of a Vector's storage.
type Stats struct {
	Len               int    // Logical size
	Cap               int    // Slot table length * ChunkSize
	AllocatedElements int    // Elements backed by materialized chunks
	LiveChunks        int    // Materialized chunks
	Slots             int    // Slot table length
	ChunkAllocs       uint64 // Historical: chunks ever materialized
	ChunkReleases     uint64 // Historical: chunks ever released
	ChunkBytes        int64  // Bytes charged per chunk
}

// New creates an empty Vector with the given chunk size.
// No storage is allocated until elements are accessed.
func New[T any](chunkSize int, opts ...Option) (*Vector[T], error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var init func(*T)
	if o.init != nil {
		fn, ok := o.init.(func(*T))
		if !ok {
			return nil, ErrInitTypeMismatch
		}
		init = fn
	}

	var zero T
	return &Vector[T]{
		table:      container.NewChunkTable[T](chunkSize),
		chunkSize:  chunkSize,
		init:       init,
		chunkBytes: int64(unsafe.Sizeof(zero)) * int64(chunkSize),
		logger:     o.logger,
		metrics:    o.metricsCollector,
		acquirer:   o.acquirer,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](chunkSize int, opts ...Option) *Vector[T] {
	v, err := New[T](chunkSize, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the logical size.
func (v *Vector[T]) Len() int {
	return v.size
}

// Empty reports whether Len is zero.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Cap returns the index space addressable without growing the slot table.
// It is always a multiple of ChunkSize and at least Len.
func (v *Vector[T]) Cap() int {
	return v.table.Slots() * v.chunkSize
}

// ChunkSize returns the allocation granularity.
func (v *Vector[T]) ChunkSize() int {
	return v.chunkSize
}

// AllocatedElements returns the number of elements backed by real storage.
func (v *Vector[T]) AllocatedElements() int {
	return v.table.Live() * v.chunkSize
}

// Resize sets the logical size to n.
//
// Growing extends the slot table with unallocated slots and never allocates
// element storage. Shrinking releases every chunk that starts at or beyond n.
// A chunk straddling n is kept, and its elements at index >= n are reset to
// the default value so a later grow does not expose them.
//
// Resize panics with *NegativeSizeError if n < 0, and with
// container.ErrSlotLimit if the capacity needed for n would overflow.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(&NegativeSizeError{Size: n})
	}

	from := v.size
	if n == from {
		return
	}

	if n > from {
		v.table.Grow(v.slotsFor(n))
	} else {
		v.shrink(n)
	}
	v.size = n

	v.metrics.RecordResize(from, n)
	v.logger.LogResize(from, n, v.Cap())
}

// At returns a pointer to element i, materializing its chunk if needed.
// The pointer stays valid until a shrink releases the chunk.
//
// At panics with *IndexOutOfRangeError if i is outside [0, Len()).
func (v *Vector[T]) At(i int) *T {
	v.checkIndex(i)

	slot, off := i/v.chunkSize, i%v.chunkSize
	c := v.table.Chunk(slot)
	if c == nil {
		c = v.materialize(slot)
	}
	return &c[off]
}

// Get returns element i. Like At, it materializes the chunk on first touch.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set assigns element i.
func (v *Vector[T]) Set(i int, val T) {
	*v.At(i) = val
}

// Peek returns element i without allocating. For an index inside an
// unallocated chunk it returns the default value and false.
//
// Peek panics with *IndexOutOfRangeError if i is outside [0, Len()).
func (v *Vector[T]) Peek(i int) (T, bool) {
	v.checkIndex(i)

	c := v.table.Chunk(i / v.chunkSize)
	if c == nil {
		return v.defaultValue(), false
	}
	return c[i%v.chunkSize], true
}

// All yields every in-range element backed by a materialized chunk, in
// ascending index order. It never allocates.
//
// The set of chunks is fixed when iteration starts. Chunks materialized by
// At, Get or Set inside the loop body are not yielded; elements that a
// Resize inside the loop puts out of range are not yielded either.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.table.Each(func(slot int, chunk []T) bool {
			start := slot * v.chunkSize
			for off := range chunk {
				i := start + off
				if i >= v.size {
					return false
				}
				if !yield(i, chunk[off]) {
					return false
				}
			}
			return true
		})
	}
}

// Stats returns a snapshot of the vector's storage.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:               v.size,
		Cap:               v.Cap(),
		AllocatedElements: v.AllocatedElements(),
		LiveChunks:        v.table.Live(),
		Slots:             v.table.Slots(),
		ChunkAllocs:       v.chunkAllocs,
		ChunkReleases:     v.chunkReleases,
		ChunkBytes:        v.chunkBytes,
	}
}

// Free releases all storage and the slot table. Afterwards the vector is
// indistinguishable from a newly created one.
func (v *Vector[T]) Free() {
	from := v.size
	released := v.table.Reset()
	v.size = 0
	v.released(released, 0)

	if from != 0 {
		v.metrics.RecordResize(from, 0)
		v.logger.LogResize(from, 0, 0)
	}
}

func (v *Vector[T]) shrink(n int) {
	// First slot whose start index is >= n.
	first := v.slotsFor(n)
	v.released(v.table.ReleaseFrom(first), n)

	if off := n % v.chunkSize; off != 0 {
		if c := v.table.Chunk(n / v.chunkSize); c != nil {
			v.reset(c[off:])
		}
	}
}

func (v *Vector[T]) released(chunks, size int) {
	if chunks == 0 {
		return
	}
	v.chunkReleases += uint64(chunks)
	if v.acquirer != nil {
		v.acquirer.ReleaseMemory(int64(chunks) * v.chunkBytes)
	}
	v.metrics.RecordChunkRelease(chunks, chunks*v.chunkSize)
	v.logger.LogChunksReleased(chunks, size)
}

func (v *Vector[T]) materialize(slot int) []T {
	if v.acquirer != nil {
		if err := v.acquirer.AcquireMemory(v.chunkBytes); err != nil {
			v.logger.LogAllocationFailed(slot, v.chunkBytes, err)
			panic(&AllocationError{Chunk: slot, Bytes: v.chunkBytes, cause: err})
		}
	}

	c, created := v.table.Materialize(slot, v.init)
	if !created {
		if v.acquirer != nil {
			v.acquirer.ReleaseMemory(v.chunkBytes)
		}
		return c
	}
	v.chunkAllocs++

	v.metrics.RecordChunkAlloc(v.chunkSize)
	v.logger.LogChunkAllocated(slot, v.chunkSize)
	return c
}

func (v *Vector[T]) reset(elems []T) {
	clear(elems)
	if v.init != nil {
		for i := range elems {
			v.init(&elems[i])
		}
	}
}

func (v *Vector[T]) defaultValue() T {
	var zero T
	if v.init != nil {
		v.init(&zero)
	}
	return zero
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(&IndexOutOfRangeError{Index: i, Len: v.size})
	}
}

// slotsFor returns the number of slots needed to cover n elements.
func (v *Vector[T]) slotsFor(n int) int {
	slots := n / v.chunkSize
	if n%v.chunkSize != 0 {
		slots++
	}
	return slots
}
