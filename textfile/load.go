package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/arbor"
	"github.com/spf13/afero"
)

// DefaultIndent is the number of spaces per level of depth, if not configured otherwise.
const DefaultIndent = 2

// Options configure loading of outlines. A nil *Options selects the defaults.
type Options struct {
	Indent        int      // spaces per level of depth
	SyntheticRoot string   // if set, top-level lines become children of a root holding this value
	Fs            afero.Fs // file system to load from, defaults to the OS file system
}

// Errors flagged by the outline loader. They are wrapped with the number of
// the offending line.
var (
	ErrNotRegularFile = errors.New("textfile: not a regular file")
	ErrIndentation    = errors.New("textfile: invalid indentation")
	ErrMultipleRoots  = errors.New("textfile: more than one top-level line")
)

func (opts *Options) normalized() *Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Indent <= 0 {
		o.Indent = DefaultIndent
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	return &o
}

// Load reads an outline file and creates a tree from it.
// Opening the file is done synchronously, scanning its lines is done
// by a separate goroutine.
func Load(name string, opts *Options) (*arbor.Tree[string], error) {
	opts = opts.normalized()
	fi, err := opts.Fs.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, name)
	}
	file, err := opts.Fs.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tracer().Debugf("loading outline %s, %d bytes", name, fi.Size())
	return Parse(file, opts)
}

// outlineLine is a message from the line scanner to the tree builder.
type outlineLine struct {
	no    int    // line number, starting at 1
	depth int    // level of indentation
	text  string // text without indentation
	err   error  // scanning error, terminates the outline
}

// eof is published after the last line.
var eof = &outlineLine{}

// Parse reads an outline from r and creates a tree from it.
func Parse(r io.Reader, opts *Options) (*arbor.Tree[string], error) {
	opts = opts.normalized()
	cast := caster.New(nil) // we will broadcast messages when lines are scanned
	defer cast.Close()
	ctx, cancel := context.WithCancel(context.Background())
	lines, ok := cast.Sub(ctx, 16)
	if !ok {
		cancel()
		return nil, errors.New("textfile: cannot subscribe to outline scanner")
	}
	// runs before Close, unblocking the caster if we stop reading early
	defer func() {
		cancel()
		go drain(lines)
	}()
	go scanLines(r, opts.Indent, cast)
	b := newBuilder(opts.SyntheticRoot)
	for msg := range lines {
		l := msg.(*outlineLine)
		if l == eof {
			tracer().Debugf("outline complete with %d nodes", b.tree.NodesCount())
			return b.tree, nil
		}
		if l.err != nil {
			return nil, l.err
		}
		if err := b.add(l); err != nil {
			return nil, err
		}
	}
	return nil, errors.New("textfile: outline scanner stopped unexpectedly")
}

// drain discards messages until the subscription is closed.
func drain(lines <-chan interface{}) {
	for range lines {
	}
}

// --- Line scanning goroutine -----------------------------------------------

func scanLines(r io.Reader, indent int, cast *caster.Caster) {
	scanner := bufio.NewScanner(r)
	no := 0
	for scanner.Scan() {
		no++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if text := strings.TrimLeft(line, " \t"); text == "" || text[0] == '#' {
			continue
		}
		if !cast.Pub(measure(no, line, indent)) {
			return // builder gave up
		}
	}
	if err := scanner.Err(); err != nil {
		cast.Pub(&outlineLine{no: no + 1, err: fmt.Errorf("textfile: reading line %d: %w", no+1, err)})
		return
	}
	cast.Pub(eof)
}

// measure splits the indentation off a line. Every tab counts as one level,
// spaces have to come in multiples of indent.
func measure(no int, line string, indent int) *outlineLine {
	tabs, spaces, i := 0, 0, 0
	for ; i < len(line); i++ {
		if line[i] == '\t' {
			tabs++
		} else if line[i] == ' ' {
			spaces++
		} else {
			break
		}
	}
	l := &outlineLine{no: no, depth: tabs + spaces/indent, text: line[i:]}
	if spaces%indent != 0 {
		l.err = fmt.Errorf("%w: line %d: %d spaces are not a multiple of %d",
			ErrIndentation, no, spaces, indent)
	}
	return l
}

// --- Tree building ---------------------------------------------------------

type builder struct {
	tree   *arbor.Tree[string]
	stack  []int // stack[d] is the last node appended at depth d
	offset int   // 1 with a synthetic root
}

func newBuilder(syntheticRoot string) *builder {
	b := &builder{tree: arbor.New[string]()}
	if syntheticRoot != "" {
		b.tree.SetRoot(syntheticRoot)
		b.stack = []int{0}
		b.offset = 1
	}
	return b
}

func (b *builder) add(l *outlineLine) error {
	d := l.depth + b.offset
	switch {
	case b.tree.IsEmpty():
		if d != 0 {
			return fmt.Errorf("%w: line %d: first line may not be indented", ErrIndentation, l.no)
		}
		b.tree.SetRoot(l.text)
		b.stack = []int{0}
		return nil
	case d == 0:
		return fmt.Errorf("%w: line %d", ErrMultipleRoots, l.no)
	case d > len(b.stack):
		return fmt.Errorf("%w: line %d is indented by more than one level", ErrIndentation, l.no)
	}
	h, err := b.tree.AddChild(b.stack[d-1], l.text)
	if err != nil {
		return err
	}
	b.stack = append(b.stack[:d], h)
	return nil
}
