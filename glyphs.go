package arbor

// Glyphs is a table of box-drawing characters used for connecting nodes.
//
// The horizontal renderer uses LeftTopCorner, LeftBottomCorner and LeftJunction,
// the vertical renderer uses LeftTopCorner, RightTopCorner and TopJunction.
// Both use the Vertical and Horizontal lines.
type Glyphs struct {
	Vertical         rune
	Horizontal       rune
	RightTopCorner   rune
	LeftTopCorner    rune
	LeftBottomCorner rune
	TopJunction      rune
	LeftJunction     rune
}

// HeavyBox uses heavy box-drawing characters. It is the default.
var HeavyBox = Glyphs{
	Vertical:         '\u2503', // ┃
	Horizontal:       '\u2501', // ━
	RightTopCorner:   '\u2513', // ┓
	LeftTopCorner:    '\u250F', // ┏
	LeftBottomCorner: '\u2517', // ┗
	TopJunction:      '\u2533', // ┳
	LeftJunction:     '\u2523', // ┣
}

// LightBox uses light box-drawing characters.
var LightBox = Glyphs{
	Vertical:         '\u2502', // │
	Horizontal:       '\u2500', // ─
	RightTopCorner:   '\u2510', // ┐
	LeftTopCorner:    '\u250C', // ┌
	LeftBottomCorner: '\u2514', // └
	TopJunction:      '\u252C', // ┬
	LeftJunction:     '\u251C', // ├
}

// ASCIIBox uses 7-bit ASCII characters only, for environments without
// box-drawing support.
var ASCIIBox = Glyphs{
	Vertical:         '|',
	Horizontal:       '-',
	RightTopCorner:   '+',
	LeftTopCorner:    '+',
	LeftBottomCorner: '`',
	TopJunction:      '+',
	LeftJunction:     '+',
}

// IsZero reports whether no glyph at all has been set.
func (g Glyphs) IsZero() bool {
	return g == Glyphs{}
}

// WithDefaults returns g with every glyph that is not set taken from def.
func (g Glyphs) WithDefaults(def Glyphs) Glyphs {
	fill := func(r *rune, d rune) {
		if *r == 0 {
			*r = d
		}
	}
	fill(&g.Vertical, def.Vertical)
	fill(&g.Horizontal, def.Horizontal)
	fill(&g.RightTopCorner, def.RightTopCorner)
	fill(&g.LeftTopCorner, def.LeftTopCorner)
	fill(&g.LeftBottomCorner, def.LeftBottomCorner)
	fill(&g.TopJunction, def.TopJunction)
	fill(&g.LeftJunction, def.LeftJunction)
	return g
}

// Contains reports whether r is one of the glyphs of g.
func (g Glyphs) Contains(r rune) bool {
	switch r {
	case g.Vertical, g.Horizontal, g.RightTopCorner, g.LeftTopCorner,
		g.LeftBottomCorner, g.TopJunction, g.LeftJunction:
		return true
	}
	return false
}

// corner selects the glyph prefixing the first label line of a node in
// horizontal mode.
func (g Glyphs) corner(pos Position) rune {
	switch pos {
	case LeftExtreme:
		return g.LeftTopCorner
	case RightExtreme:
		return g.LeftBottomCorner
	case Left, Right:
		return g.LeftJunction
	}
	return ' '
}

// top selects the glyph on top of the center column of a node in vertical mode.
func (g Glyphs) top(pos Position) rune {
	switch pos {
	case LeftExtreme:
		return g.LeftTopCorner
	case RightExtreme:
		return g.RightTopCorner
	case Left, Right:
		return g.TopJunction
	}
	return ' '
}
