package unrolled

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cursorAt[T any](t *testing.T, l *List[T], i int) Cursor[T] {
	t.Helper()
	c, err := l.At(i)
	require.NoError(t, err)
	return c
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  []int
		capacity int
		at       int // -1 = End
		want     []int
		blocks   []int
	}{
		{"into empty", nil, 4, -1, []int{99}, []int{1}},
		{"at end", []int{1, 2}, 4, -1, []int{1, 2, 99}, []int{3}},
		{"at end of full tail", []int{1, 2}, 2, -1, []int{1, 2, 99}, []int{2, 1}},
		{"before first, spare", []int{1, 2}, 4, 0, []int{99, 1, 2}, []int{3}},
		{"middle, spare", []int{1, 2, 3}, 4, 1, []int{1, 99, 2, 3}, []int{4}},
		{"before first, full", []int{1, 2, 3}, 3, 0, []int{99, 1, 2, 3}, []int{1, 3}},
		{"middle, full splits", []int{1, 2, 3, 4}, 4, 2, []int{1, 2, 99, 3, 4}, []int{3, 2}},
		{"last of full block", []int{1, 2, 3, 4, 5}, 4, 3, []int{1, 2, 3, 99, 4, 5}, []int{4, 1, 1}},
		{"second block", []int{1, 2, 3, 4, 5, 6}, 3, 4, []int{1, 2, 3, 4, 99, 5, 6}, []int{3, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList[int](t, tt.capacity)
			require.NoError(t, l.Append(tt.initial...))
			pos := l.End()
			if tt.at >= 0 {
				pos = cursorAt(t, l, tt.at)
			}
			c, err := l.Insert(pos, 99)
			require.NoError(t, err)
			assert.Equal(t, 99, c.Value())
			assert.Equal(t, tt.want, l.ToSlice())
			assert.Equal(t, tt.blocks, l.BlockCounts())
			requireInvariants(t, l)
		})
	}
}

func TestInsertReturnedCursorWalks(t *testing.T) {
	l := newTestList[int](t, 3)
	require.NoError(t, l.Append(1, 2, 3, 4))
	c, err := l.Insert(cursorAt(t, l, 1), 50)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Next().Value())
	assert.Equal(t, 1, c.Prev().Value())
}

// TestInsertNBeforeFullBlock inserts a run at index 0 of a full block; the
// run fills one new block before it allocates the next.
func TestInsertNBeforeFullBlock(t *testing.T) {
	l := newTestList[int](t, 4)
	require.NoError(t, l.Append(1, 2, 3, 4))

	c, err := l.InsertN(l.Begin(), 6, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 1, 2, 3, 4}, l.ToSlice())
	assert.Equal(t, []int{4, 2, 4}, l.BlockCounts())
	assert.True(t, c.Equal(l.Begin()))
	requireInvariants(t, l)

	// a second run before the same block tops up the block in front of it
	c, err = l.InsertValues(cursorAt(t, l, 6), 7, 8, 9)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Value())
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 7, 8, 9, 1, 2, 3, 4}, l.ToSlice())
	assert.Equal(t, []int{4, 4, 1, 4}, l.BlockCounts())
	requireInvariants(t, l)
}

func TestInsertBeforeFullBlockUsesPreviousSpare(t *testing.T) {
	l := newTestList[int](t, 3)
	require.NoError(t, l.Append(1, 2, 3, 4, 5, 6))
	l.Erase(cursorAt(t, l, 2)) // [1 2][4 5 6]
	require.Equal(t, []int{2, 3}, l.BlockCounts())

	alloc := l.GetStats().BlocksAllocated
	c, err := l.Insert(cursorAt(t, l, 2), 99)
	require.NoError(t, err)
	assert.Equal(t, 99, c.Value())
	assert.Equal(t, 4, c.Next().Value())
	assert.Equal(t, []int{1, 2, 99, 4, 5, 6}, l.ToSlice())
	assert.Equal(t, []int{3, 3}, l.BlockCounts())
	assert.Equal(t, alloc, l.GetStats().BlocksAllocated)
	requireInvariants(t, l)
}

func TestInsertN(t *testing.T) {
	l := newTestList[int](t, 3)
	require.NoError(t, l.Append(1, 2, 3))

	c, err := l.InsertN(cursorAt(t, l, 1), 4, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 7, 7, 7, 2, 3}, l.ToSlice())
	assert.Equal(t, 7, c.Value())
	assert.Equal(t, 1, c.Prev().Value())
	requireInvariants(t, l)

	pos := l.Begin()
	c, err = l.InsertN(pos, 0, 9)
	require.NoError(t, err)
	assert.True(t, c.Equal(pos))
	assert.Equal(t, 7, l.Len())
}

func TestInsertValuesAndSeq(t *testing.T) {
	l := newTestList[string](t, 2)
	require.NoError(t, l.Append("a", "e"))

	c, err := l.InsertValues(cursorAt(t, l, 1), "b", "c", "d")
	require.NoError(t, err)
	assert.Equal(t, "b", c.Value())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, l.ToSlice())

	c, err = l.InsertSeq(l.End(), slices.Values([]string{"f", "g"}))
	require.NoError(t, err)
	assert.Equal(t, "f", c.Value())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, l.ToSlice())
	requireInvariants(t, l)
}

func TestErase(t *testing.T) {
	tests := []struct {
		name   string
		at     int
		want   []int
		blocks []int
		next   int // value under the returned cursor, -1 = End
	}{
		{"first", 0, []int{2, 3, 4, 5, 6, 7}, []int{2, 3, 1}, 2},
		{"middle of block", 1, []int{1, 3, 4, 5, 6, 7}, []int{2, 3, 1}, 3},
		{"last of block", 2, []int{1, 2, 4, 5, 6, 7}, []int{2, 3, 1}, 4},
		{"last of list releases tail", 6, []int{1, 2, 3, 4, 5, 6}, []int{3, 3}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList[int](t, 3)
			require.NoError(t, l.Append(seq(1, 7)...))

			c := l.Erase(cursorAt(t, l, tt.at))
			assert.Equal(t, tt.want, l.ToSlice())
			assert.Equal(t, tt.blocks, l.BlockCounts())
			if tt.next < 0 {
				assert.True(t, c.IsEnd())
			} else {
				assert.Equal(t, tt.next, c.Value())
			}
			requireInvariants(t, l)
		})
	}
}

func TestEraseSoleElementOfMiddleBlock(t *testing.T) {
	l := newTestList[int](t, 2)
	require.NoError(t, l.Append(1, 2, 4))
	_, err := l.Insert(cursorAt(t, l, 2), 3) // tail [4] has room: [1 2][3 4]
	require.NoError(t, err)
	require.NoError(t, l.PushFront(0)) // [0][1 2][3 4]
	require.Equal(t, []int{1, 2, 2}, l.BlockCounts())

	c := l.Erase(l.Begin())
	assert.Equal(t, 1, c.Value())
	assert.Equal(t, []int{2, 2}, l.BlockCounts())

	c, err = l.Insert(cursorAt(t, l, 2), 9) // full [3 4] at index 0: [1 2][9][3 4]
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 2}, l.BlockCounts())
	c = l.Erase(c)
	assert.Equal(t, 3, c.Value())
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	requireInvariants(t, l)
}

func TestEraseEndIsNoop(t *testing.T) {
	l := Of(1, 2)
	c := l.Erase(l.End())
	assert.True(t, c.IsEnd())
	assert.Equal(t, 2, l.Len())
}

// TestDrainByEraseBegin erases Begin until empty and checks every block was
// handed back to the allocator.
func TestDrainByEraseBegin(t *testing.T) {
	alloc := &countingAllocator[int]{}
	l, err := NewWithAllocator[int](alloc, Options{NodeCapacity: 4})
	require.NoError(t, err)
	require.NoError(t, l.Append(seq(1, 37)...))
	require.Equal(t, 10, alloc.allocs)

	for want := 1; !l.Empty(); want++ {
		assert.Equal(t, want, l.Begin().Value())
		l.Erase(l.Begin())
		requireInvariants(t, l)
	}
	assert.Zero(t, l.Len())
	assert.True(t, l.Begin().Equal(l.End()))
	assert.Equal(t, alloc.allocs, alloc.frees)
	st := l.GetStats()
	assert.Equal(t, st.BlocksAllocated, st.BlocksFreed)
}

func TestEraseRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to int // -1 = End
		want     []int
	}{
		{"inside one block", 1, 3, []int{1, 4, 5, 6, 7, 8, 9, 10}},
		{"across blocks", 2, 7, []int{1, 2, 8, 9, 10}},
		{"to end", 5, -1, []int{1, 2, 3, 4, 5}},
		{"everything", 0, -1, []int{}},
		{"empty range", 4, 4, seq(1, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList[int](t, 4)
			require.NoError(t, l.Append(seq(1, 10)...))
			first := cursorAt(t, l, tt.from)
			last := l.End()
			if tt.to >= 0 {
				last = cursorAt(t, l, tt.to)
			}
			var lastVal int
			if !last.IsEnd() {
				lastVal = last.Value()
			}

			c := l.EraseRange(first, last)
			assert.Equal(t, tt.want, l.ToSlice())
			if tt.to < 0 {
				assert.True(t, c.IsEnd())
			} else {
				assert.Equal(t, lastVal, c.Value())
			}
			requireInvariants(t, l)
		})
	}
}

// TestRandomEditsAgainstSlice applies random inserts and erases at random
// positions and compares the result with the same edits on a plain slice.
func TestRandomEditsAgainstSlice(t *testing.T) {
	for _, capacity := range []int{1, 3, 8} {
		rng := rand.New(rand.NewSource(int64(100 + capacity)))
		l := newTestList[int](t, capacity)
		var model []int

		for step := 0; step < 3000; step++ {
			if len(model) == 0 || rng.Intn(3) > 0 {
				i := rng.Intn(len(model) + 1)
				pos := l.End()
				if i < len(model) {
					pos = cursorAt(t, l, i)
				}
				c, err := l.Insert(pos, step)
				require.NoError(t, err)
				require.Equal(t, step, c.Value())
				model = slices.Insert(model, i, step)
			} else {
				i := rng.Intn(len(model))
				c := l.Erase(cursorAt(t, l, i))
				model = slices.Delete(model, i, i+1)
				if i < len(model) {
					require.Equal(t, model[i], c.Value())
				} else {
					require.True(t, c.IsEnd())
				}
			}
			require.Equal(t, len(model), l.Len())
		}
		requireInvariants(t, l)
		require.Equal(t, model, l.ToSlice())
	}
}
