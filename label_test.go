package arbor

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLabel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var tests = []struct {
		text  string
		lines []string
		width int
	}{
		{"<x>", []string{"<x>"}, 3},
		{"", []string{" "}, 1},
		{"ab\ncd\n", []string{"ab", "cd"}, 2},
		{"ab\r\nc", []string{"ab", "c "}, 2},
		{"größe", []string{"größe"}, 5},
	}
	for i, test := range tests {
		lbl := makeLabel(test.text)
		if lbl.width != test.width {
			t.Errorf("test #%d: expected width %d, got %d", i, test.width, lbl.width)
		}
		if len(lbl.lines) != len(test.lines) {
			t.Errorf("test #%d: expected %d lines, got %d", i, len(test.lines), len(lbl.lines))
			continue
		}
		for j, line := range lbl.lines {
			if string(line) != test.lines[j] {
				t.Errorf("test #%d: expected line %q, got %q", i, test.lines[j], string(line))
			}
		}
	}
}

func TestLabelHalves(t *testing.T) {
	for _, test := range []struct{ width, left, right int }{
		{1, 0, 0}, {2, 1, 0}, {3, 1, 1}, {4, 2, 1},
	} {
		l, r := label{width: test.width}.halves()
		if l != test.left || r != test.right {
			t.Errorf("width %d: expected %d|%d, got %d|%d", test.width, test.left, test.right, l, r)
		}
	}
}
