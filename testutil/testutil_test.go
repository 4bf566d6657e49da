package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript_Valid(t *testing.T) {
	rng := NewRNG(4711)

	script := rng.Script(2000, 300)
	require.Len(t, script, 2000)

	size := 0
	kinds := map[OpKind]int{}
	for _, op := range script {
		kinds[op.Kind]++
		switch op.Kind {
		case OpResize:
			assert.GreaterOrEqual(t, op.Size, 0)
			assert.LessOrEqual(t, op.Size, 300)
			size = op.Size
		default:
			assert.GreaterOrEqual(t, op.Index, 0)
			assert.Less(t, op.Index, size, "op %s out of range at size %d", op, size)
		}
	}

	for _, k := range []OpKind{OpResize, OpSet, OpGet, OpPeek} {
		assert.Positive(t, kinds[k], "no %s ops generated", k)
	}
}

func TestScript_Deterministic(t *testing.T) {
	a := NewRNG(42).Script(100, 50)
	b := NewRNG(42).Script(100, 50)
	assert.Equal(t, a, b)

	rng := NewRNG(42)
	first := rng.Script(100, 50)
	rng.Reset()
	assert.Equal(t, first, rng.Script(100, 50))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "resize(10)", Op{Kind: OpResize, Size: 10}.String())
	assert.Equal(t, "set(3, 7)", Op{Kind: OpSet, Index: 3, Value: 7}.String())
	assert.Equal(t, "get(3)", Op{Kind: OpGet, Index: 3}.String())
	assert.Equal(t, "peek(1)", Op{Kind: OpPeek, Index: 1}.String())
	assert.Equal(t, "OpKind(9)", OpKind(9).String())
}
