package arbor

import (
	"io"
	"strings"
)

// EmptyTree is the rendering of a tree without nodes.
const EmptyTree = "(empty)"

// HorizontalString renders the tree from left to right: the root is put at the
// left margin, every level of depth is indented by p.Size cells. Children
// rendered before a node appear above it, children rendered after a node
// appear below it.
//
// p may be nil, which selects DefaultParams.
func (t *Tree[T]) HorizontalString(p *PrintParams[T]) string {
	if t.IsEmpty() {
		return EmptyTree
	}
	r := hrenderer[T]{
		tree:   t,
		params: p.normalized(),
	}
	r.render(0, Root)
	return r.out.String()
}

// RenderHorizontal writes the output of HorizontalString to w.
func (t *Tree[T]) RenderHorizontal(w io.Writer, p *PrintParams[T]) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := io.WriteString(w, t.HorizontalString(p))
	return err
}

// hrenderer holds the state of a single horizontal rendering.
//
// prefix is the text preceding the connector glyph of the node currently
// rendered. Each level of recursion below the root extends it by exactly
// Size cells and truncates it again on return.
type hrenderer[T any] struct {
	tree   *Tree[T]
	params PrintParams[T]
	prefix []rune
	out    strings.Builder
}

func (r *hrenderer[T]) render(h int, pos Position) {
	n := &r.tree.nodes[h]
	values := r.tree.childValues(h)
	before := r.params.split(n.value, values)
	tracer().P("node", h).Debugf("horizontal: %s, %d children before of %d", pos, before, len(values))
	for i := 0; i < before; i++ {
		cells := r.push(pos, pos.connectsBefore())
		r.render(n.children[i], beforePosition(i))
		r.pop(cells)
	}
	lbl := makeLabel(r.params.Layout.Label(n.value, values))
	g := r.params.Glyphs
	for k, line := range lbl.lines {
		r.out.WriteString(string(r.prefix))
		if pos != Root {
			if k == 0 {
				r.out.WriteRune(g.corner(pos))
				r.out.WriteString(strings.Repeat(string(g.Horizontal), r.params.Size-1))
			} else {
				r.out.WriteRune(r.cell(pos.connectsAfter()))
				r.out.WriteString(strings.Repeat(" ", r.params.Size-1))
			}
		}
		r.out.WriteString(string(line))
		r.out.WriteByte('\n')
	}
	for i := before; i < len(n.children); i++ {
		cells := r.push(pos, pos.connectsAfter())
		r.render(n.children[i], afterPosition(i, len(n.children)))
		r.pop(cells)
	}
}

// push extends the prefix for the children of a node at position pos and returns
// the number of cells added. The root has no connector, hence adds nothing.
func (r *hrenderer[T]) push(pos Position, connect bool) int {
	if pos == Root {
		return 0
	}
	r.prefix = append(r.prefix, r.cell(connect))
	for i := 1; i < r.params.Size; i++ {
		r.prefix = append(r.prefix, ' ')
	}
	return r.params.Size
}

func (r *hrenderer[T]) pop(cells int) {
	assert(cells <= len(r.prefix), "horizontal rendering: prefix underflow")
	r.prefix = r.prefix[:len(r.prefix)-cells]
}

func (r *hrenderer[T]) cell(connect bool) rune {
	if connect {
		return r.params.Glyphs.Vertical
	}
	return ' '
}
