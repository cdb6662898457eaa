package recursion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayoffers/internal/recursion"
)

func leaves(vals ...int) []recursion.Node[int] {
	out := make([]recursion.Node[int], 0, len(vals))
	for _, v := range vals {
		out = append(out, recursion.Leaf(v))
	}
	return out
}

func TestFlattenTree(t *testing.T) {
	tree := recursion.Branch(
		recursion.Leaf(1),
		recursion.Branch(leaves(2, 3)...),
		recursion.Branch(recursion.Branch(leaves(4)...), recursion.Leaf(5)),
	)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, recursion.FlattenTree(tree))
}

func TestFilterTree_DropsEmptyBranches(t *testing.T) {
	tree := recursion.Branch(
		recursion.Leaf(1),
		recursion.Branch(leaves(2, 4)...),
		recursion.Branch(leaves(6)...), // fully filtered away below
	)
	odd := func(n int) bool { return n%2 != 0 }
	got := recursion.FilterTree(odd, tree)

	assert.Equal(t, []int{1}, recursion.FlattenTree(got))
	// the branch that lost all leaves is gone, not left empty
	assert.Len(t, got.Children(), 1)
}

func TestMaxDepth(t *testing.T) {
	assert.Equal(t, 0, recursion.MaxDepth(recursion.Branch[int]()))
	assert.Equal(t, 1, recursion.MaxDepth(recursion.Branch(leaves(1, 2, 3)...)))
	nested := recursion.Branch(
		recursion.Leaf(1),
		recursion.Branch(recursion.Branch(leaves(2)...)),
	)
	assert.Equal(t, 3, recursion.MaxDepth(nested))
}

func TestCountLeaves(t *testing.T) {
	assert.Equal(t, 0, recursion.CountLeaves(recursion.Branch[int]()))
	tree := recursion.Branch(
		recursion.Leaf(1),
		recursion.Branch(leaves(2, 3)...),
		recursion.Branch[int](),
	)
	assert.Equal(t, 3, recursion.CountLeaves(tree))
}
