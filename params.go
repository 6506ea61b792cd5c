package arbor

import (
	"fmt"
)

// DefaultSize is the number of cells between a node and each of its children,
// if not configured otherwise.
const DefaultSize = 2

// Layout is a strategy for rendering the nodes of a tree.
//
// Label returns the text to display for a node. The text may span several
// lines, separated by '\n'. All lines of a label are expected to have the
// same width; renderers pad shorter lines, but will complain about it.
//
// Split returns the number of children to render before the node, i.e. above it
// in horizontal mode and to the left of it in vertical mode. Children are counted
// from the front of the node's children.
//
// Both methods receive the value of a node and the values of its children.
type Layout[T any] interface {
	Label(value T, children []T) string
	Split(value T, children []T) int
}

// DefaultLayout wraps values in angle brackets and renders half of the
// children (rounding down) before their parent.
type DefaultLayout[T any] struct{}

// Label returns "<value>".
func (DefaultLayout[T]) Label(value T, _ []T) string {
	return fmt.Sprintf("<%v>", value)
}

// Split returns len(children)/2.
func (DefaultLayout[T]) Split(_ T, children []T) int {
	return len(children) / 2
}

// LayoutFuncs adapts a pair of functions to the Layout interface.
// A nil function falls back to the behaviour of DefaultLayout.
type LayoutFuncs[T any] struct {
	LabelFn func(value T, children []T) string
	SplitFn func(value T, children []T) int
}

// Label calls LabelFn.
func (lf LayoutFuncs[T]) Label(value T, children []T) string {
	if lf.LabelFn == nil {
		return DefaultLayout[T]{}.Label(value, children)
	}
	return lf.LabelFn(value, children)
}

// Split calls SplitFn.
func (lf LayoutFuncs[T]) Split(value T, children []T) int {
	if lf.SplitFn == nil {
		return DefaultLayout[T]{}.Split(value, children)
	}
	return lf.SplitFn(value, children)
}

// SplitNone renders all children after their parent.
func SplitNone[T any](T, []T) int { return 0 }

// SplitAll renders all children before their parent.
func SplitAll[T any](_ T, children []T) int { return len(children) }

// PrintParams configures the renderers.
//
// Size is the number of cells of branch drawn between a node and each of its
// children and must be positive. A nil Layout and glyphs which are not set are
// replaced by defaults when rendering.
//
// Use NewParams or DefaultParams to create PrintParams. Render methods reject
// an invalid Size, String methods fall back to DefaultSize.
type PrintParams[T any] struct {
	Layout Layout[T]
	Size   int
	Glyphs Glyphs
}

// Option configures PrintParams.
type Option[T any] func(*PrintParams[T])

// WithSize sets the branch size.
func WithSize[T any](size int) Option[T] {
	return func(p *PrintParams[T]) {
		p.Size = size
	}
}

// WithGlyphs sets the table of box-drawing characters.
func WithGlyphs[T any](g Glyphs) Option[T] {
	return func(p *PrintParams[T]) {
		p.Glyphs = g
	}
}

// WithLayout sets the layout strategy.
func WithLayout[T any](layout Layout[T]) Option[T] {
	return func(p *PrintParams[T]) {
		p.Layout = layout
	}
}

// WithLabels sets a layout with a custom label function and default splitting.
func WithLabels[T any](label func(value T, children []T) string) Option[T] {
	return func(p *PrintParams[T]) {
		p.Layout = LayoutFuncs[T]{LabelFn: label}
	}
}

// DefaultParams returns PrintParams with a DefaultLayout, DefaultSize and HeavyBox glyphs.
func DefaultParams[T any]() *PrintParams[T] {
	return &PrintParams[T]{
		Layout: DefaultLayout[T]{},
		Size:   DefaultSize,
		Glyphs: HeavyBox,
	}
}

// NewParams creates PrintParams from defaults, modified by a list of options.
func NewParams[T any](opts ...Option[T]) *PrintParams[T] {
	p := DefaultParams[T]()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate checks if p may be used for rendering. A nil p selects the defaults
// and is valid.
func (p *PrintParams[T]) Validate() error {
	if p == nil {
		return nil
	}
	if p.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, is %d", ErrInvalidParams, p.Size)
	}
	return nil
}

// normalized returns a copy of p with defaults filled in. Renderers call it
// once per rendering and will never see a nil layout or a non-positive size.
func (p *PrintParams[T]) normalized() PrintParams[T] {
	var q PrintParams[T]
	if p != nil {
		q = *p
	}
	if q.Layout == nil {
		q.Layout = DefaultLayout[T]{}
	}
	if q.Size <= 0 {
		if p != nil {
			tracer().Errorf("invalid branch size %d, using %d", q.Size, DefaultSize)
		}
		q.Size = DefaultSize
	}
	q.Glyphs = q.Glyphs.WithDefaults(HeavyBox)
	return q
}

// split calls the layout and clamps the result to [0…len(children)].
func (p *PrintParams[T]) split(value T, children []T) int {
	n := p.Layout.Split(value, children)
	if n < 0 {
		return 0
	} else if n > len(children) {
		return len(children)
	}
	return n
}

// --- Positions -------------------------------------------------------------

// Position classifies a node relative to its siblings. It determines the glyphs
// connecting a node to its parent.
type Position uint8

// A node is either the root, one of the children rendered before its parent
// (Left), or one of the children rendered after its parent (Right). The first
// of the children before the parent is LeftExtreme, the last of the children
// after the parent is RightExtreme.
const (
	Root Position = iota
	LeftExtreme
	Left
	Right
	RightExtreme
)

func (pos Position) String() string {
	switch pos {
	case Root:
		return "Root"
	case LeftExtreme:
		return "LeftExtreme"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case RightExtreme:
		return "RightExtreme"
	}
	return "<unknown position>"
}

// beforePosition is the position of the i-th child rendered before its parent.
func beforePosition(i int) Position {
	if i == 0 {
		return LeftExtreme
	}
	return Left
}

// afterPosition is the position of the i-th child of n children, rendered
// after its parent.
func afterPosition(i, n int) Position {
	if i == n-1 {
		return RightExtreme
	}
	return Right
}

// connectsBefore reports whether the branch leading to a node's parent
// passes the side of the node where the children before it are drawn.
func (pos Position) connectsBefore() bool {
	return pos == Left || pos == Right || pos == RightExtreme
}

// connectsAfter reports whether the branch leading to a node's parent
// passes the side of the node where the children after it are drawn.
func (pos Position) connectsAfter() bool {
	return pos == Left || pos == Right || pos == LeftExtreme
}
