package arbor

import (
	"fmt"
)

// NoHandle is returned as a handle by insertion operations which fail.
const NoHandle = -1

type node[T any] struct {
	children []int // handles, in order of rendering
	value    T
}

// Tree is a multi-way tree with all nodes held in an arena.
//
// The zero value is an empty tree, ready to use. A Tree is not safe for
// concurrent use; clients have to serialize insertions and rendering.
type Tree[T any] struct {
	nodes []node[T]
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// WithRoot creates a tree with a single node, holding v.
func WithRoot[T any](v T) *Tree[T] {
	return &Tree[T]{
		nodes: []node[T]{{value: v}},
	}
}

// NodesCount returns the number of nodes in the arena.
func (t *Tree[T]) NodesCount() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.NodesCount() == 0
}

// SetRoot installs v as the value of the root node. For an empty tree this
// appends the root; replaced will then be false. Otherwise the value of the
// existing root is replaced in place, leaving its children untouched, and the
// previous value is returned.
func (t *Tree[T]) SetRoot(v T) (prev T, replaced bool) {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[T]{value: v})
		return prev, false
	}
	prev = t.nodes[0].value
	t.nodes[0].value = v
	return prev, true
}

// AddChild appends a new node holding v and registers it as the last child of
// parent. It returns the handle of the new node.
//
// If parent is not a valid handle, a *NodeIndexError for ObjectNode is returned
// and the tree is left unchanged.
func (t *Tree[T]) AddChild(parent int, v T) (int, error) {
	if err := t.checkHandle(parent); err != nil {
		return NoHandle, err
	}
	return t.appendChild(parent, v, len(t.nodes[parent].children)), nil
}

// AddChildAt appends a new node holding v and registers it as a child of parent,
// at position pos within the children of parent. pos may be equal to the number
// of children, appending the new node as the last child.
//
// If parent is not a valid handle, a *NodeIndexError for ObjectNode is returned.
// If pos is not a valid position, a *NodeIndexError for ObjectChild is returned.
// In both cases the tree is left unchanged.
func (t *Tree[T]) AddChildAt(parent int, v T, pos int) (int, error) {
	if err := t.checkHandle(parent); err != nil {
		return NoHandle, err
	}
	if n := len(t.nodes[parent].children); pos < 0 || pos > n {
		return NoHandle, nodeIndexError(ObjectChild, pos, n+1)
	}
	return t.appendChild(parent, v, pos), nil
}

func (t *Tree[T]) appendChild(parent int, v T, pos int) int {
	h := len(t.nodes)
	t.nodes = append(t.nodes, node[T]{value: v})
	children := append(t.nodes[parent].children, 0)
	copy(children[pos+1:], children[pos:])
	children[pos] = h
	t.nodes[parent].children = children
	tracer().Debugf("node %d appended as child #%d of %d", h, pos, parent)
	return h
}

func (t *Tree[T]) checkHandle(h int) error {
	if h < 0 || h >= t.NodesCount() {
		return nodeIndexError(ObjectNode, h, t.NodesCount())
	}
	return nil
}

// Value returns the value of the node with handle h. If h is not a valid
// handle, the zero value and false are returned.
func (t *Tree[T]) Value(h int) (T, bool) {
	if h < 0 || h >= t.NodesCount() {
		var zero T
		return zero, false
	}
	return t.nodes[h].value, true
}

// Children returns a copy of the child handles of node h, in order of rendering.
// If h is not a valid handle, nil and false are returned.
func (t *Tree[T]) Children(h int) ([]int, bool) {
	if h < 0 || h >= t.NodesCount() {
		return nil, false
	}
	return append([]int(nil), t.nodes[h].children...), true
}

// childValues collects the values of the children of node h.
func (t *Tree[T]) childValues(h int) []T {
	children := t.nodes[h].children
	values := make([]T, len(children))
	for i, ch := range children {
		values[i] = t.nodes[ch].value
	}
	return values
}

// Walk visits all nodes in pre-order, i.e. a node before its children, with
// children visited in order of rendering. The callback receives the handle
// of a node and its depth, with the root at depth 0.
// Iteration stops at the first callback error and returns that error to the caller.
func (t *Tree[T]) Walk(f func(h int, depth int) error) error {
	if t.IsEmpty() {
		return nil
	}
	return t.walk(0, 0, f)
}

func (t *Tree[T]) walk(h int, depth int, f func(int, int) error) error {
	if err := f(h, depth); err != nil {
		return err
	}
	for _, ch := range t.nodes[h].children {
		if err := t.walk(ch, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}

// Check validates structural tree invariants: every child handle is within the
// arena and greater than the handle of its parent, and every node except the
// root is referenced by exactly one parent.
//
// Check is intended to be used in tests.
func (t *Tree[T]) Check() error {
	if t.IsEmpty() {
		return nil
	}
	refs := make([]int, len(t.nodes))
	for h, n := range t.nodes {
		for i, ch := range n.children {
			if ch < 0 || ch >= len(t.nodes) {
				return fmt.Errorf("%w: child #%d of node %d has invalid handle %d",
					ErrCorruptArena, i, h, ch)
			}
			if ch <= h {
				return fmt.Errorf("%w: node %d references node %d as a child", ErrCorruptArena, h, ch)
			}
			refs[ch]++
		}
	}
	for h, cnt := range refs {
		if h == 0 && cnt != 0 {
			return fmt.Errorf("%w: root is referenced as a child", ErrCorruptArena)
		} else if h > 0 && cnt != 1 {
			return fmt.Errorf("%w: node %d is referenced %d times", ErrCorruptArena, h, cnt)
		}
	}
	return nil
}
