package recursion

// Node is one element of an ordered tree: either a leaf value or a branch
// holding child nodes. The zero value is an empty branch.
type Node[T any] struct {
	leaf *T
	kids []Node[T]
}

func Leaf[T any](v T) Node[T] {
	return Node[T]{leaf: &v}
}

func Branch[T any](kids ...Node[T]) Node[T] {
	return Node[T]{kids: kids}
}

func (n Node[T]) IsLeaf() bool { return n.leaf != nil }

// Value returns the leaf value; zero value for branches.
func (n Node[T]) Value() T {
	if n.leaf != nil {
		return *n.leaf
	}
	var zero T
	return zero
}

func (n Node[T]) Children() []Node[T] { return n.kids }

// FlattenTree collects every leaf of root in left-to-right order.
func FlattenTree[T any](root Node[T]) []T {
	if root.IsLeaf() {
		return []T{root.Value()}
	}
	out := make([]T, 0, len(root.kids))
	for _, k := range root.kids {
		out = append(out, FlattenTree(k)...)
	}
	return out
}

// FilterTree retains leaves satisfying pred and drops branches that become
// fully empty. The result is always a branch.
func FilterTree[T any](pred func(T) bool, root Node[T]) Node[T] {
	kids := make([]Node[T], 0, len(root.kids))
	for _, k := range root.kids {
		if k.IsLeaf() {
			if pred(k.Value()) {
				kids = append(kids, k)
			}
			continue
		}
		if f := FilterTree(pred, k); len(f.kids) > 0 {
			kids = append(kids, f)
		}
	}
	return Node[T]{kids: kids}
}

// MaxDepth of an empty tree is 0; a tree containing only leaves has depth 1.
func MaxDepth[T any](root Node[T]) int {
	if root.IsLeaf() || len(root.kids) == 0 {
		return 0
	}
	return depth(root)
}

func depth[T any](n Node[T]) int {
	if n.IsLeaf() {
		return 0
	}
	if len(n.kids) == 0 {
		return 1
	}
	max := 0
	for _, k := range n.kids {
		if d := depth(k); d > max {
			max = d
		}
	}
	return 1 + max
}

// CountLeaves counts leaf nodes; empty branches contribute nothing.
func CountLeaves[T any](root Node[T]) int {
	if root.IsLeaf() {
		return 1
	}
	total := 0
	for _, k := range root.kids {
		total += CountLeaves(k)
	}
	return total
}
