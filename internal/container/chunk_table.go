package container

import (
	"errors"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// MaxSlots is the largest number of chunk slots a table can address.
// Slot indices are tracked in a 32-bit roaring bitmap.
const MaxSlots = math.MaxUint32

// ErrSlotLimit is the panic value when a table is grown beyond MaxSlots.
var ErrSlotLimit = errors.New("container: chunk slot limit exceeded")

// ChunkTable is a growable table of fixed-size chunks.
// A slot is either nil (unallocated) or owns exactly ChunkSize elements.
// The set of materialized slots is kept in a roaring bitmap so that
// counting and walking them does not depend on the table length.
//
// ChunkTable is not safe for concurrent use.
type ChunkTable[T any] struct {
	chunkSize int
	slots     [][]T
	live      *roaring.Bitmap
}

// NewChunkTable creates an empty table. chunkSize must be positive.
func NewChunkTable[T any](chunkSize int) *ChunkTable[T] {
	if chunkSize <= 0 {
		panic("container: chunk size must be positive")
	}
	return &ChunkTable[T]{
		chunkSize: chunkSize,
		live:      roaring.New(),
	}
}

// ChunkSize returns the number of elements per chunk.
func (t *ChunkTable[T]) ChunkSize() int {
	return t.chunkSize
}

// Slots returns the length of the slot table.
func (t *ChunkTable[T]) Slots() int {
	return len(t.slots)
}

// Live returns the number of materialized chunks.
func (t *ChunkTable[T]) Live() int {
	return int(t.live.GetCardinality())
}

// Grow extends the table with nil slots until it has at least n slots.
// Existing slots are untouched. Grow never shrinks the table.
//
// Grow panics with ErrSlotLimit if n exceeds MaxSlots or if n*ChunkSize
// does not fit in an int.
func (t *ChunkTable[T]) Grow(n int) {
	if n <= len(t.slots) {
		return
	}
	if uint64(n) > MaxSlots || n > math.MaxInt/t.chunkSize {
		panic(ErrSlotLimit)
	}
	t.slots = append(t.slots, make([][]T, n-len(t.slots))...)
}

// Chunk returns the chunk at slot, or nil if the slot is unallocated.
func (t *ChunkTable[T]) Chunk(slot int) []T {
	return t.slots[slot]
}

// Materialize allocates the chunk at slot if it is unallocated and returns it.
// A fresh chunk holds zero values, after which init (if non-nil) runs on
// every element. The bool reports whether a new chunk was allocated.
func (t *ChunkTable[T]) Materialize(slot int, init func(*T)) ([]T, bool) {
	if c := t.slots[slot]; c != nil {
		return c, false
	}

	c := make([]T, t.chunkSize)
	if init != nil {
		for i := range c {
			init(&c[i])
		}
	}

	t.slots[slot] = c
	t.live.Add(uint32(slot)) //nolint:gosec // slot < len(slots) <= MaxSlots
	return c, true
}

// ReleaseFrom drops every materialized chunk at slot index >= first and
// resets those slots to nil. It returns the number of chunks released.
func (t *ChunkTable[T]) ReleaseFrom(first int) int {
	if first < 0 {
		first = 0
	}
	if first >= len(t.slots) {
		return 0
	}

	released := 0
	it := t.live.Iterator()
	it.AdvanceIfNeeded(uint32(first)) //nolint:gosec // first < len(slots) <= MaxSlots
	for it.HasNext() {
		t.slots[it.Next()] = nil
		released++
	}

	if released > 0 {
		t.live.RemoveRange(uint64(first), uint64(len(t.slots)))
	}
	return released
}

// Reset releases every chunk and drops the slot table.
// It returns the number of chunks released.
func (t *ChunkTable[T]) Reset() int {
	released := t.Live()
	t.slots = nil
	t.live.Clear()
	return released
}

// Each calls fn for every chunk materialized when Each was called, in
// ascending slot order. fn may materialize or release chunks; chunks added
// during iteration are not visited and released ones are skipped.
// Iteration stops when fn returns false.
func (t *ChunkTable[T]) Each(fn func(slot int, chunk []T) bool) {
	for _, s := range t.live.ToArray() {
		slot := int(s)
		if slot >= len(t.slots) {
			return
		}
		c := t.slots[slot]
		if c == nil {
			continue
		}
		if !fn(slot, c) {
			return
		}
	}
}
