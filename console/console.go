package console

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"golang.org/x/term"
)

// Config configures a Printer.
type Config struct {
	Width int  // lines wider than Width cells are truncated; 0 means unlimited
	Color bool // color glyphs and labels
}

// Ellipsis is put at the end of truncated lines.
const Ellipsis = '…'

// Printer outputs renderings of trees to a console with a fixed width font.
type Printer struct {
	Glyphs     arbor.Glyphs // glyphs used for the rendering
	GlyphColor *color.Color
	LabelColor *color.Color
	config     Config
}

// NewPrinter creates a printer for renderings using glyphs. Glyphs which are
// not set are taken from arbor.HeavyBox. If config is nil, ConfigFromTerminal
// is used.
func NewPrinter(glyphs arbor.Glyphs, config *Config) *Printer {
	glyphs = glyphs.WithDefaults(arbor.HeavyBox)
	if config == nil {
		config = ConfigFromTerminal()
	}
	pr := &Printer{
		Glyphs:     glyphs,
		GlyphColor: color.New(color.FgBlue),
		LabelColor: color.New(color.FgRed, color.Bold),
		config:     *config,
	}
	return pr
}

// Print writes a rendering to w, line by line.
func (pr *Printer) Print(w io.Writer, rendering string) error {
	if pr.config.Color {
		pr.GlyphColor.EnableColor()
		pr.LabelColor.EnableColor()
	} else {
		pr.GlyphColor.DisableColor()
		pr.LabelColor.DisableColor()
	}
	lines := strings.SplitAfter(rendering, "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		nl := strings.HasSuffix(line, "\n")
		cells := []rune(strings.TrimSuffix(line, "\n"))
		if pr.config.Width > 0 && len(cells) > pr.config.Width {
			tracer().Debugf("truncating line of %d cells", len(cells))
			cells = append(cells[:pr.config.Width-1], Ellipsis)
		}
		if err := pr.printRuns(w, cells); err != nil {
			return err
		}
		if nl {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// printRuns outputs runs of glyphs, of blanks and of label text with their
// respective colors.
func (pr *Printer) printRuns(w io.Writer, cells []rune) error {
	for len(cells) > 0 {
		kind := pr.kindOf(cells[0])
		n := 1
		for n < len(cells) && pr.kindOf(cells[n]) == kind {
			n++
		}
		run := string(cells[:n])
		var err error
		switch kind {
		case glyphRun:
			_, err = pr.GlyphColor.Fprint(w, run)
		case labelRun:
			_, err = pr.LabelColor.Fprint(w, run)
		default:
			_, err = io.WriteString(w, run)
		}
		if err != nil {
			return err
		}
		cells = cells[n:]
	}
	return nil
}

type runKind int8

const (
	blankRun runKind = iota
	glyphRun
	labelRun
)

func (pr *Printer) kindOf(r rune) runKind {
	if r == ' ' {
		return blankRun
	} else if pr.Glyphs.Contains(r) {
		return glyphRun
	}
	return labelRun
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and switches on colored output.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			config.Width = w
		}
	}
	tracer().P("format", "console").Infof("setting line width to %d, color=%v", config.Width, config.Color)
	return config
}
