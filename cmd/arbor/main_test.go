package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	argparser := newArgparser()
	var out strings.Builder
	argparser.SetOut(&out)
	argparser.SetErr(io.Discard)
	argparser.SetIn(strings.NewReader(stdin))
	argparser.SetArgs(args)
	err := argparser.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "", "demo", "--no-color")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 29)
	require.Contains(t, out, "<28>")
	tree, err := demoTree()
	require.NoError(t, err)
	require.NoError(t, tree.Check())
}

func TestBST(t *testing.T) {
	out, err := run(t, "", "bst", "5", "3", "8", "--no-color")
	require.NoError(t, err)
	require.Equal(t, "┏━<3>\n<5>\n┗━<8>\n", out)
	//
	out, err = run(t, "", "bst", "5", "8", "--glyphs", "ascii", "--no-color")
	require.NoError(t, err)
	require.Equal(t, "<5>\n`-<8>\n", out)
	//
	_, err = run(t, "", "bst", "five")
	require.Error(t, err)
	_, err = run(t, "", "bst", "1", "--glyphs", "fancy")
	require.Error(t, err)
}

func TestFormats(t *testing.T) {
	out, err := run(t, "", "bst", "2", "1", "--format", "dot")
	require.NoError(t, err)
	require.Contains(t, out, "strict digraph {")
	require.Contains(t, out, `"0" -> "1";`)
	//
	out, err = run(t, "", "bst", "2", "1", "--format", "html")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, `<pre class="arbor">`))
	//
	out, err = run(t, "", "bst", "2", "1", "--format", "text", "--table", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "<1>")
	require.Contains(t, strings.ToLower(out), "2 nodes")
	//
	_, err = run(t, "", "bst", "2", "--format", "pdf")
	require.Error(t, err)
}

func TestOutline(t *testing.T) {
	name := filepath.Join(t.TempDir(), "outline.txt")
	require.NoError(t, os.WriteFile(name, []byte("root\n  a\n  b\n"), 0644))
	out, err := run(t, "", "outline", name, "--no-color")
	require.NoError(t, err)
	require.Equal(t, "root\n┣━a\n┗━b\n", out)
}

func TestHTMLFromStdin(t *testing.T) {
	out, err := run(t, "<p>x</p>", "html", "-", "--no-color")
	require.NoError(t, err)
	require.Equal(t, "p\n┗━\"x\"\n", out)
}

func TestVerticalFlag(t *testing.T) {
	out, err := run(t, "", "bst", "5", "3", "8", "--vertical", "--size", "1", "--no-color")
	require.NoError(t, err)
	require.Equal(t, " ┏━<5>━┓ \n<3>   <8>\n", out)
}
