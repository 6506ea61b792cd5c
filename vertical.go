package arbor

import (
	"io"
	"strings"
)

// VerticalString renders the tree from top to bottom: the root is put at the
// top, children hang below their parent. Children rendered before a node appear
// to the left of it, children rendered after a node appear to the right.
//
// The output is assembled column by column. Every cell of a node's label
// owns a column of text running from the top of the output down to the cell,
// carrying the branches which pass above it. When the whole tree has been
// visited, the columns are interleaved to form lines of text.
//
// p may be nil, which selects DefaultParams.
func (t *Tree[T]) VerticalString(p *PrintParams[T]) string {
	if t.IsEmpty() {
		return EmptyTree
	}
	r := vrenderer[T]{
		tree:   t,
		params: p.normalized(),
	}
	width := r.render(0, 0, Root)
	assert(width == len(r.columns), "vertical rendering: lost track of columns")
	return interleave(r.columns)
}

// RenderVertical writes the output of VerticalString to w.
func (t *Tree[T]) RenderVertical(w io.Writer, p *PrintParams[T]) error {
	if err := p.Validate(); err != nil {
		return err
	}
	_, err := io.WriteString(w, t.VerticalString(p))
	return err
}

// vrenderer holds the state of a single vertical rendering.
//
// prefix is the text above the connector row of the node currently rendered,
// read top-down. Each level of recursion below the root extends it by exactly
// Size cells and truncates it again on return.
type vrenderer[T any] struct {
	tree    *Tree[T]
	params  PrintParams[T]
	prefix  []rune
	columns [][]rune
}

// render inserts the columns for the subtree of node h at column index, and
// returns the number of columns inserted.
func (r *vrenderer[T]) render(h int, index int, pos Position) int {
	n := &r.tree.nodes[h]
	values := r.tree.childValues(h)
	lbl := makeLabel(r.params.Layout.Label(n.value, values))
	r.insert(index, r.nodeColumns(lbl, pos))
	width := lbl.width
	before := r.params.split(n.value, values)
	tracer().P("node", h).Debugf("vertical: %s at column %d, %d children before of %d",
		pos, index, before, len(values))
	at := index // children before h are inserted left of h, pushing h to the right
	for i := 0; i < before; i++ {
		cells := r.push(pos, pos.connectsBefore())
		w := r.render(n.children[i], at, beforePosition(i))
		r.pop(cells)
		at += w
		width += w
	}
	at += lbl.width
	for i := before; i < len(n.children); i++ {
		cells := r.push(pos, pos.connectsAfter())
		w := r.render(n.children[i], at, afterPosition(i, len(n.children)))
		r.pop(cells)
		at += w
		width += w
	}
	return width
}

// nodeColumns creates a column for every cell of a label. Below the prefix, a
// non-root node has a connector row, followed by Size-1 rows of stem, followed
// by the label rows. The center column carries the connector glyph and the stem,
// the other columns carry the branch to the parent on the side facing it.
func (r *vrenderer[T]) nodeColumns(lbl label, pos Position) [][]rune {
	g := r.params.Glyphs
	leading, trailing := lbl.halves()
	columns := make([][]rune, lbl.width)
	for i := range columns {
		col := make([]rune, len(r.prefix), len(r.prefix)+r.params.Size+len(lbl.lines))
		copy(col, r.prefix)
		if pos != Root {
			var connector, stem rune
			switch {
			case i == leading:
				connector, stem = g.top(pos), g.Vertical
			case i < leading && pos.connectsBefore():
				connector, stem = g.Horizontal, ' '
			case i >= lbl.width-trailing && pos.connectsAfter():
				connector, stem = g.Horizontal, ' '
			default:
				connector, stem = ' ', ' '
			}
			col = append(col, connector)
			for k := 1; k < r.params.Size; k++ {
				col = append(col, stem)
			}
		}
		for _, line := range lbl.lines {
			col = append(col, line[i])
		}
		columns[i] = col
	}
	return columns
}

// insert puts cols at position index, shifting existing columns to the right.
func (r *vrenderer[T]) insert(index int, cols [][]rune) {
	assert(index <= len(r.columns), "vertical rendering: column index out of range")
	n := len(r.columns)
	r.columns = append(r.columns, cols...)
	copy(r.columns[index+len(cols):], r.columns[index:n])
	copy(r.columns[index:], cols)
}

// push extends the prefix for the children of a node at position pos and returns
// the number of cells added. The root has no connector, hence adds nothing.
func (r *vrenderer[T]) push(pos Position, connect bool) int {
	if pos == Root {
		return 0
	}
	if connect {
		r.prefix = append(r.prefix, r.params.Glyphs.Horizontal)
	} else {
		r.prefix = append(r.prefix, ' ')
	}
	for i := 1; i < r.params.Size; i++ {
		r.prefix = append(r.prefix, ' ')
	}
	return r.params.Size
}

func (r *vrenderer[T]) pop(cells int) {
	assert(cells <= len(r.prefix), "vertical rendering: prefix underflow")
	r.prefix = r.prefix[:len(r.prefix)-cells]
}

// interleave turns columns into lines: the j-th cell of column i becomes the
// i-th cell of line j. Columns shorter than the longest one are padded with blanks.
func interleave(columns [][]rune) string {
	rows := 0
	for _, col := range columns {
		if len(col) > rows {
			rows = len(col)
		}
	}
	var out strings.Builder
	for j := 0; j < rows; j++ {
		for _, col := range columns {
			if j < len(col) {
				out.WriteRune(col[j])
			} else {
				out.WriteByte(' ')
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}
