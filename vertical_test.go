package arbor

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestVerticalEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	if s := New[int]().VerticalString(nil); s != EmptyTree {
		t.Errorf("expected empty tree to render as %q, is %q", EmptyTree, s)
	}
}

func TestVerticalSingleNode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if s := WithRoot("x").VerticalString(nil); s != "<x>\n" {
		t.Errorf("expected single line <x>, got %q", s)
	}
}

func TestVerticalDefaultLayout(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := abc().VerticalString(nil)
	t.Logf("tree:\n%s", s)
	expected := strings.Join([]string{
		" ┏━<A>━┓ ",
		" ┃     ┃ ",
		"<B>   <C>",
	}, "\n") + "\n"
	if s != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, s)
	}
}

func TestVerticalSplitNone(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p := NewParams(WithLayout[string](LayoutFuncs[string]{SplitFn: SplitNone[string]}))
	s := abc().VerticalString(p)
	t.Logf("tree:\n%s", s)
	expected := strings.Join([]string{
		"<A>━┳━━┓ ",
		"    ┃  ┃ ",
		"   <B><C>",
	}, "\n") + "\n"
	if s != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, s)
	}
}

func TestVerticalSplitAll(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	p := NewParams(WithLayout[string](LayoutFuncs[string]{SplitFn: SplitAll[string]}))
	s := abc().VerticalString(p)
	t.Logf("tree:\n%s", s)
	expected := strings.Join([]string{
		" ┏━━┳━<A>",
		" ┃  ┃    ",
		"<B><C>   ",
	}, "\n") + "\n"
	if s != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, s)
	}
}

func TestVerticalDeep(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := WithRoot("A")
	b, _ := tree.AddChild(0, "B")
	tree.AddChild(b, "D")
	s := tree.VerticalString(nil) // single children are rendered after their parent
	t.Logf("tree:\n%s", s)
	expected := strings.Join([]string{
		"<A>━┓    ",
		"    ┃    ",
		"   <B>━┓ ",
		"       ┃ ",
		"      <D>",
	}, "\n") + "\n"
	if s != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, s)
	}
}

func TestVerticalMultiLineRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	tree := WithRoot("ab\ncd")
	tree.AddChild(0, "x")
	p := NewParams(
		WithLabels(func(v string, _ []string) string { return v }),
		WithSize[string](1),
	)
	s := tree.VerticalString(p)
	t.Logf("tree:\n%s", s)
	if s != "ab┓\ncdx\n" {
		t.Errorf("unexpected output %q", s)
	}
}

func TestVerticalIdempotent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	tree := abc()
	tree.AddChild(1, "D")
	tree.AddChild(2, "E")
	tree.AddChild(2, "F")
	p := NewParams(WithGlyphs[string](LightBox))
	if s1, s2 := tree.VerticalString(p), tree.VerticalString(p); s1 != s2 {
		t.Errorf("expected renderings to be identical:\n%s\n%s", s1, s2)
	}
}

func TestVerticalRowsHaveEqualWidth(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	tree := WithRoot(0)
	for i := 1; i < 12; i++ {
		tree.AddChild((i-1)/3, i)
	}
	s := tree.VerticalString(nil)
	t.Logf("tree:\n%s", s)
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	width := len([]rune(lines[0]))
	for i, line := range lines {
		if len([]rune(line)) != width {
			t.Errorf("line %d has width %d, expected %d", i, len([]rune(line)), width)
		}
	}
}

func TestInterleave(t *testing.T) {
	columns := [][]rune{[]rune("ad"), []rune("b"), []rune("cef")}
	if s := interleave(columns); s != "abc\nd e\n  f\n" {
		t.Errorf("unexpected interleaving %q", s)
	}
}

func TestVerticalThreeLevels(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := threeLevels().VerticalString(nil)
	t.Logf("tree:\n%s", s)
	expected := strings.Join([]string{
		"    ┏━━━━━━━<A>━━━━┓    ",
		"    ┃              ┃    ",
		" ┏━<B>━┳━━┓     ┏━<C>━┓ ",
		" ┃     ┃  ┃     ┃     ┃ ",
		"<D>   <E><F>   <G>   <H>",
	}, "\n") + "\n"
	if s != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, s)
	}
}

func TestVerticalMultiLineLeftmost(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := abc()
	tree.AddChild(1, "D")
	tree.AddChild(1, "E")
	s := tree.VerticalString(NewParams(WithLabels(bLabels)))
	t.Logf("tree:\n%s", s)
	expected := strings.Join([]string{
		"    ┏━━━━<A>━┓ ",
		"    ┃        ┃ ",
		" ┏━<B>━┓    <C>",
		" ┃ <b> ┃       ",
		"<D>   <E>      ",
	}, "\n") + "\n"
	if s != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, s)
	}
}

func TestVerticalPartialGlyphs(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	//
	s := abc().VerticalString(NewParams(WithGlyphs[string](Glyphs{Vertical: '|'})))
	t.Logf("tree:\n%s", s)
	expected := strings.Join([]string{
		" ┏━<A>━┓ ",
		" |     | ",
		"<B>   <C>",
	}, "\n") + "\n"
	if s != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, s)
	}
}
