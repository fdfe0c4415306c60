package pstack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegression_CloneThenDiscardDoesNotPanic(t *testing.T) {
	var a Stack[int]
	a.Push(49)
	b := a.Clone()
	a.Push(27)
	b.DiscardTop()
	_ = a
}

func TestPushCloneBasics(t *testing.T) {
	var a Stack[int]
	a.Push(10)

	b := a.Clone()
	b.Push(20)

	size, blocks := a.Check()
	assert.Equal(t, 2, size)
	assert.Equal(t, 1, blocks)
	size, blocks = b.Check()
	assert.Equal(t, 2, size)
	assert.Equal(t, 1, blocks)

	v, ok := a.PopClone()
	assert.Equal(t, 10, v)
	assert.True(t, ok)
	_, ok = a.PopClone()
	assert.False(t, ok)
	_, ok = a.PopClone()
	assert.False(t, ok)

	v, ok = b.PopClone()
	assert.Equal(t, 20, v)
	assert.True(t, ok)
	v, ok = b.PopClone()
	assert.Equal(t, 10, v)
	assert.True(t, ok)
	_, ok = b.PopClone()
	assert.False(t, ok)
	_, ok = b.PopClone()
	assert.False(t, ok)
}

func TestDeepChainDropsWithoutRecursion(t *testing.T) {
	var s Stack[int]
	for i := 0; i < 1_000_000; i++ {
		clone := s.Clone()
		clone.Push(42)
		s.Push(i)
		clone.Release(nil)
	}
	_, blocks := s.Check()
	assert.Equal(t, 1_000_000, blocks)
	s.Release(nil)
	assert.True(t, s.IsEmpty())
}

func TestTryPopUniqueRespectsSharing(t *testing.T) {
	var a Stack[int]
	a.Push(1)
	b := a.Clone()

	_, ok := a.TryPopUnique()
	require.False(t, ok, "top is shared with b, must not pop")

	// Once b's handle is released, a is left as the sole owner of slot 0.
	b.Release(nil)
	v, ok := a.TryPopUnique()
	require.True(t, ok, "b released its claim, a now owns slot 0 uniquely")
	assert.Equal(t, 1, v)
	assert.True(t, a.IsEmpty())
}

// referenceStack is a plain growing-array oracle: clone is O(n) (deep copy),
// but push/pop/peek semantics over any one handle must agree with Stack.
type referenceStack[T any] struct{ items []T }

func (r referenceStack[T]) clone() referenceStack[T] {
	cp := make([]T, len(r.items))
	copy(cp, r.items)
	return referenceStack[T]{cp}
}

func (r *referenceStack[T]) push(v T) { r.items = append(r.items, v) }

func (r *referenceStack[T]) pop() (v T, ok bool) {
	if len(r.items) == 0 {
		return v, false
	}
	v = r.items[len(r.items)-1]
	r.items = r.items[:len(r.items)-1]
	return v, true
}

func (r referenceStack[T]) peek() (v T, ok bool) {
	if len(r.items) == 0 {
		return v, false
	}
	return r.items[len(r.items)-1], true
}

func (r referenceStack[T]) isEmpty() bool { return len(r.items) == 0 }

// TestDifferentialOracle runs a random ensemble of live handles through
// push/peek/pop_clone/discard_top/is_empty/clone and checks that Stack
// agrees with referenceStack at every step, per the persistent-stack
// differential oracle testable property.
func TestDifferentialOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	type handle struct {
		impl Stack[int]
		ref  referenceStack[int]
	}
	handles := []*handle{{}}
	next := 0

	for step := 0; step < 20000; step++ {
		h := handles[rng.Intn(len(handles))]
		switch rng.Intn(6) {
		case 0:
			v := next
			next++
			h.impl.Push(v)
			h.ref.push(v)
		case 1:
			iv, iok := h.impl.Peek()
			rv, rok := h.ref.peek()
			require.Equal(t, rok, iok)
			if rok {
				require.Equal(t, rv, iv)
			}
		case 2:
			iv, iok := h.impl.PopClone()
			rv, rok := h.ref.pop()
			require.Equal(t, rok, iok)
			if rok {
				require.Equal(t, rv, iv)
			}
		case 3:
			iok := h.impl.DiscardTop()
			_, rok := h.ref.pop()
			require.Equal(t, rok, iok)
		case 4:
			require.Equal(t, h.ref.isEmpty(), h.impl.IsEmpty())
		case 5:
			nh := &handle{impl: h.impl.Clone(), ref: h.ref.clone()}
			handles = append(handles, nh)
		}
	}
}
