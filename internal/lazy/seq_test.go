package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayoffers/internal/lazy"
)

// counting wraps a source sequence and records how many elements were pulled.
func counting(n int, pulled *int) lazy.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			*pulled++
			if !yield(i) {
				return
			}
		}
	}
}

func TestTake_StopsPullingAtBound(t *testing.T) {
	pulled := 0
	out := lazy.Collect(lazy.Take(counting(1000, &pulled), 3))
	assert.Equal(t, []int{0, 1, 2}, out)
	assert.Equal(t, 3, pulled, "no work beyond what is consumed")
}

func TestTake_ZeroAndOversized(t *testing.T) {
	pulled := 0
	assert.Empty(t, lazy.Collect(lazy.Take(counting(10, &pulled), 0)))
	assert.Equal(t, 0, pulled)

	out := lazy.Collect(lazy.Take(lazy.FromSlice([]int{1, 2}), 5))
	assert.Equal(t, []int{1, 2}, out)
}

func TestSeq_IsRestartable(t *testing.T) {
	s := lazy.Map(lazy.FromSlice([]int{1, 2, 3}), func(n int) int { return n * 10 })
	first := lazy.Collect(s)
	second := lazy.Collect(s)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{10, 20, 30}, second)
}

func TestFilterMapCompose_StayLazy(t *testing.T) {
	pulled := 0
	s := lazy.Map(
		lazy.Filter(counting(1000, &pulled), func(n int) bool { return n%2 == 0 }),
		func(n int) int { return n + 1 },
	)
	out := lazy.Collect(lazy.Take(s, 2))
	assert.Equal(t, []int{1, 3}, out)
	assert.LessOrEqual(t, pulled, 4)
}

func TestTakeWhile(t *testing.T) {
	s := lazy.TakeWhile(lazy.FromSlice([]int{1, 2, 3, 10, 2}), func(n int) bool { return n < 5 })
	assert.Equal(t, []int{1, 2, 3}, lazy.Collect(s))
}

func TestChunk(t *testing.T) {
	s := lazy.Chunk(lazy.FromSlice([]int{1, 2, 3, 4, 5}), 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, lazy.Collect(s))
}

func TestChunk_ExactMultiple(t *testing.T) {
	s := lazy.Chunk(lazy.FromSlice([]int{1, 2, 3, 4}), 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, lazy.Collect(s))
}
