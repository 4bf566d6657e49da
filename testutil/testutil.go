package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// OpKind identifies a scripted operation.
type OpKind int

const (
	// OpResize resizes to Op.Size.
	OpResize OpKind = iota
	// OpSet writes Op.Value at Op.Index.
	OpSet
	// OpGet reads Op.Index through an allocating accessor.
	OpGet
	// OpPeek reads Op.Index without allocating.
	OpPeek
)

func (k OpKind) String() string {
	switch k {
	case OpResize:
		return "resize"
	case OpSet:
		return "set"
	case OpGet:
		return "get"
	case OpPeek:
		return "peek"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one step of a script.
type Op struct {
	Kind  OpKind
	Size  int // OpResize
	Index int // OpSet, OpGet, OpPeek
	Value int // OpSet
}

func (o Op) String() string {
	switch o.Kind {
	case OpResize:
		return fmt.Sprintf("resize(%d)", o.Size)
	case OpSet:
		return fmt.Sprintf("set(%d, %d)", o.Index, o.Value)
	default:
		return fmt.Sprintf("%s(%d)", o.Kind, o.Index)
	}
}

// Script generates n operations with sizes in [0, maxSize].
//
// Element operations are only emitted while the scripted size is non-zero
// and always use an index below it, so every script is valid to replay.
// About one op in five is a resize, and some resizes go to zero so scripts
// also cover regrowth from empty.
func (r *RNG) Script(n, maxSize int) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, 0, n)
	size := 0
	for len(ops) < n {
		if size == 0 || r.rand.Intn(5) == 0 {
			next := r.rand.Intn(maxSize + 1)
			if r.rand.Intn(10) == 0 {
				next = 0
			}
			ops = append(ops, Op{Kind: OpResize, Size: next})
			size = next
			continue
		}

		op := Op{Index: r.rand.Intn(size)}
		switch r.rand.Intn(3) {
		case 0:
			op.Kind = OpSet
			op.Value = r.rand.Intn(1 << 20)
		case 1:
			op.Kind = OpGet
		default:
			op.Kind = OpPeek
		}
		ops = append(ops, op)
	}
	return ops
}
