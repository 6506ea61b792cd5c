package arbor

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// label is the text block of a node, split into lines of cells.
// Every cell is a rune and occupies one column of output.
type label struct {
	lines [][]rune
	width int
}

var setupGraphemes sync.Once

// makeLabel splits a node's text into lines. Trailing line breaks are dropped,
// lines shorter than the widest one are padded with blanks. An empty text
// results in a single blank cell, as every node needs at least one column
// to attach branches to.
//
// Labels are expected to consist of characters of narrow display width. Wide
// characters break alignment with the lines around them, as the renderers
// count cells, not display width. Offending labels are reported to the tracer.
func makeLabel(text string) label {
	text = strings.TrimRight(text, "\r\n")
	split := strings.Split(text, "\n")
	lbl := label{lines: make([][]rune, len(split))}
	for i, line := range split {
		lbl.lines[i] = []rune(strings.TrimSuffix(line, "\r"))
		if len(lbl.lines[i]) > lbl.width {
			lbl.width = len(lbl.lines[i])
		}
	}
	if lbl.width == 0 {
		lbl.width = 1
	}
	for i, line := range lbl.lines {
		if len(line) < lbl.width {
			if len(lbl.lines) > 1 {
				tracer().Errorf("label line %d of %q is %d cells short", i, text, lbl.width-len(line))
			}
			lbl.lines[i] = append(line, []rune(strings.Repeat(" ", lbl.width-len(line)))...)
		}
	}
	checkDisplayWidth(lbl)
	return lbl
}

func checkDisplayWidth(lbl label) {
	if tracer().GetTraceLevel() < tracing.LevelInfo {
		return
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	for _, line := range lbl.lines {
		gstr := grapheme.StringFromString(string(line))
		if w := uax11.StringWidth(gstr, uax11.LatinContext); w != len(line) {
			tracer().Infof("label line %q has display width %d, but occupies %d cells", string(line), w, len(line))
		}
	}
}

// halves splits the width of the label around a center column.
func (lbl label) halves() (left, right int) {
	left = lbl.width / 2
	right = lbl.width - 1 - left
	return
}
