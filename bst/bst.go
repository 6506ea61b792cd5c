package bst

import (
	"fmt"
	"io"

	"github.com/npillmayer/arbor"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree, ordered by a comparison function.
type BSTree[T any] struct {
	tree *arbor.Tree[T]
	cmp  func(a, b T) int
}

// New creates an empty binary search tree for values with a natural order.
func New[T constraints.Ordered]() *BSTree[T] {
	return NewFunc(Compare[T])
}

// WithRoot creates a binary search tree holding a single value.
func WithRoot[T constraints.Ordered](v T) *BSTree[T] {
	bt := New[T]()
	bt.tree.SetRoot(v)
	return bt
}

// NewFunc creates an empty binary search tree ordered by cmp. cmp(a, b) must
// return a negative number for a < b, 0 for a == b and a positive number for a > b.
func NewFunc[T any](cmp func(a, b T) int) *BSTree[T] {
	if cmp == nil {
		panic("bst: comparison function may not be nil")
	}
	return &BSTree[T]{
		tree: arbor.New[T](),
		cmp:  cmp,
	}
}

// Compare is a three-way comparison for ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Tree returns the underlying arena tree. Clients should not insert nodes
// into it directly, as this may break the search order.
func (bt *BSTree[T]) Tree() *arbor.Tree[T] {
	return bt.tree
}

// NodesCount returns the number of values in the tree, including duplicates.
func (bt *BSTree[T]) NodesCount() int {
	return bt.tree.NodesCount()
}

// SetRoot replaces the value of the root, see arbor.Tree.SetRoot.
// The search order is not checked.
func (bt *BSTree[T]) SetRoot(v T) (prev T, replaced bool) {
	return bt.tree.SetRoot(v)
}

// Value returns the value of node h.
func (bt *BSTree[T]) Value(h int) (T, bool) {
	return bt.tree.Value(h)
}

// Children returns the child handles of node h.
func (bt *BSTree[T]) Children(h int) ([]int, bool) {
	return bt.tree.Children(h)
}

// Insert places v into the tree and returns the handle of its node.
func (bt *BSTree[T]) Insert(v T) int {
	if bt.tree.IsEmpty() {
		bt.tree.SetRoot(v)
		return 0
	}
	h := 0
	for {
		left, right := bt.sides(h)
		if bt.cmp(v, bt.value(h)) >= 0 {
			if right != arbor.NoHandle {
				h = right
				continue
			}
			ch, err := bt.tree.AddChild(h, v) // after a possible left child
			return bt.inserted(ch, h, err)
		}
		if left != arbor.NoHandle {
			h = left
			continue
		}
		ch, err := bt.tree.AddChildAt(h, v, 0) // before a possible right child
		return bt.inserted(ch, h, err)
	}
}

func (bt *BSTree[T]) inserted(h, parent int, err error) int {
	if err != nil {
		panic(fmt.Sprintf("bst: cannot insert below node %d: %v", parent, err))
	}
	tracer().Debugf("inserted %v as node %d below %d", bt.value(h), h, parent)
	return h
}

// Contains reports whether a value equal to v is present in the tree.
func (bt *BSTree[T]) Contains(v T) bool {
	h := 0
	if bt.tree.IsEmpty() {
		return false
	}
	for h != arbor.NoHandle {
		c := bt.cmp(v, bt.value(h))
		if c == 0 {
			return true
		}
		left, right := bt.sides(h)
		if c < 0 {
			h = left
		} else {
			h = right
		}
	}
	return false
}

// Preorder lists the values of the tree, every node before its subtrees.
func (bt *BSTree[T]) Preorder() []T {
	return bt.traverse(func(vals []T, v T, left, right func([]T) []T) []T {
		return right(left(append(vals, v)))
	})
}

// Inorder lists the values of the tree in ascending order.
func (bt *BSTree[T]) Inorder() []T {
	return bt.traverse(func(vals []T, v T, left, right func([]T) []T) []T {
		return right(append(left(vals), v))
	})
}

// Postorder lists the values of the tree, every node after its subtrees.
func (bt *BSTree[T]) Postorder() []T {
	return bt.traverse(func(vals []T, v T, left, right func([]T) []T) []T {
		return append(right(left(vals)), v)
	})
}

type visitor[T any] func(vals []T, v T, left, right func([]T) []T) []T

func (bt *BSTree[T]) traverse(visit visitor[T]) []T {
	vals := make([]T, 0, bt.NodesCount())
	if bt.tree.IsEmpty() {
		return vals
	}
	var rec func(h int, vals []T) []T
	rec = func(h int, vals []T) []T {
		if h == arbor.NoHandle {
			return vals
		}
		left, right := bt.sides(h)
		return visit(vals, bt.value(h),
			func(vals []T) []T { return rec(left, vals) },
			func(vals []T) []T { return rec(right, vals) })
	}
	return rec(0, vals)
}

// Min returns the smallest value of the tree, or false for an empty tree.
func (bt *BSTree[T]) Min() (T, bool) {
	return bt.extreme(func(left, _ int) int { return left })
}

// Max returns the largest value of the tree, or false for an empty tree.
// For duplicates the last one inserted is found.
func (bt *BSTree[T]) Max() (T, bool) {
	return bt.extreme(func(_, right int) int { return right })
}

func (bt *BSTree[T]) extreme(next func(left, right int) int) (T, bool) {
	if bt.tree.IsEmpty() {
		var zero T
		return zero, false
	}
	h := 0
	for {
		n := next(bt.sides(h))
		if n == arbor.NoHandle {
			return bt.value(h), true
		}
		h = n
	}
}

// Height returns the number of nodes on the longest path from the root to a leaf.
func (bt *BSTree[T]) Height() int {
	if bt.tree.IsEmpty() {
		return 0
	}
	var height func(h int) int
	height = func(h int) int {
		if h == arbor.NoHandle {
			return 0
		}
		left, right := bt.sides(h)
		l, r := height(left), height(right)
		if l > r {
			return l + 1
		}
		return r + 1
	}
	return height(0)
}

// sides returns the left and right child of node h, or NoHandle for missing ones.
func (bt *BSTree[T]) sides(h int) (left, right int) {
	left, right = arbor.NoHandle, arbor.NoHandle
	children, _ := bt.tree.Children(h)
	switch len(children) {
	case 0:
	case 1:
		if bt.cmp(bt.value(children[0]), bt.value(h)) < 0 {
			left = children[0]
		} else {
			right = children[0]
		}
	case 2:
		left, right = children[0], children[1]
	default:
		panic(fmt.Sprintf("bst: node %d has %d children", h, len(children)))
	}
	return
}

func (bt *BSTree[T]) value(h int) T {
	v, ok := bt.tree.Value(h)
	if !ok {
		panic(fmt.Sprintf("bst: invalid node handle %d", h))
	}
	return v
}

// --- Rendering -------------------------------------------------------------

// Layout returns a layout for rendering the tree which puts left children before
// and right children after their parent, including single children.
func (bt *BSTree[T]) Layout() arbor.Layout[T] {
	return layout[T]{cmp: bt.cmp}
}

type layout[T any] struct {
	arbor.DefaultLayout[T]
	cmp func(a, b T) int
}

func (l layout[T]) Split(value T, children []T) int {
	if len(children) == 1 {
		if l.cmp(children[0], value) < 0 {
			return 1
		}
		return 0
	}
	return len(children) / 2
}

// params fills in the tree's layout if p does not bring its own.
func (bt *BSTree[T]) params(p *arbor.PrintParams[T]) *arbor.PrintParams[T] {
	if p == nil {
		return arbor.NewParams(arbor.WithLayout(bt.Layout()))
	}
	if p.Layout == nil {
		q := *p
		q.Layout = bt.Layout()
		return &q
	}
	return p
}

// HorizontalString renders the tree with the root at the left margin and lesser
// values above greater ones. p may be nil.
func (bt *BSTree[T]) HorizontalString(p *arbor.PrintParams[T]) string {
	return bt.tree.HorizontalString(bt.params(p))
}

// VerticalString renders the tree with the root at the top and lesser values
// to the left of greater ones. p may be nil.
func (bt *BSTree[T]) VerticalString(p *arbor.PrintParams[T]) string {
	return bt.tree.VerticalString(bt.params(p))
}

// RenderHorizontal writes the output of HorizontalString to w.
func (bt *BSTree[T]) RenderHorizontal(w io.Writer, p *arbor.PrintParams[T]) error {
	return bt.tree.RenderHorizontal(w, bt.params(p))
}

// RenderVertical writes the output of VerticalString to w.
func (bt *BSTree[T]) RenderVertical(w io.Writer, p *arbor.PrintParams[T]) error {
	return bt.tree.RenderVertical(w, bt.params(p))
}
