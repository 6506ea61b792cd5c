package arbor

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Node IDs are arena handles, node labels are
// taken from the layout of p, which may be nil.
func Tree2Dot[T any](t *Tree[T], w io.Writer, p *PrintParams[T]) error {
	params := p.normalized()
	var nodelist, edgelist strings.Builder
	err := t.Walk(func(h int, depth int) error {
		n := &t.nodes[h]
		lbl := params.Layout.Label(n.value, t.childValues(h))
		styles := nodeDotStyles(depth, len(n.children) == 0)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", h, dotEscape(lbl), styles)
		for _, ch := range n.children {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", h, ch)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	var out strings.Builder
	out.WriteString("strict digraph {\n")
	out.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	out.WriteString(nodelist.String())
	out.WriteString(edgelist.String())
	out.WriteString("}\n")
	_, err = io.WriteString(w, out.String())
	return err
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", `\n`)

func dotEscape(s string) string {
	return dotEscaper.Replace(strings.TrimRight(s, "\r\n"))
}

func nodeDotStyles(depth int, isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box,fillcolor=white"
	} else {
		s += ",color=black,shape=circle"
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth%len(hexcolors)])
	}
	return s
}

var hexcolors = [...]string{"#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
