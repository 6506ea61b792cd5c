package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/arbor"
)

// ArenaTable lists the nodes of a tree in arena order, together with their
// labels and child handles. Labels are taken from the layout of p, which may
// be nil.
func ArenaTable[T any](t *arbor.Tree[T], p *arbor.PrintParams[T]) string {
	var layout arbor.Layout[T] = arbor.DefaultLayout[T]{}
	if p != nil && p.Layout != nil {
		layout = p.Layout
	}
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Handle", "Label", "Children"})
	for h := 0; h < t.NodesCount(); h++ {
		v, _ := t.Value(h)
		children, _ := t.Children(h)
		values := make([]T, len(children))
		handles := make([]string, len(children))
		for i, ch := range children {
			values[i], _ = t.Value(ch)
			handles[i] = fmt.Sprint(ch)
		}
		tbl.AppendRow(table.Row{h, layout.Label(v, values), strings.Join(handles, ", ")})
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("%d nodes", t.NodesCount()), ""})
	return tbl.Render()
}
