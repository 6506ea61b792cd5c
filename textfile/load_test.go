package textfile

import (
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func preorder(t *testing.T, tree *arbor.Tree[string]) string {
	var vals []string
	err := tree.Walk(func(h, depth int) error {
		v, _ := tree.Value(h)
		vals = append(vals, strings.Repeat(".", depth)+v)
		return nil
	})
	require.NoError(t, err)
	return strings.Join(vals, " ")
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.textfile")
	defer teardown()
	//
	tree, err := Load("testdata/outline.txt", nil)
	require.NoError(t, err)
	require.NoError(t, tree.Check())
	require.Equal(t, "fruit .apple ..braeburn ..gala .pear .citrus ..lemon", preorder(t, tree))
	p := arbor.NewParams(arbor.WithLabels(func(v string, _ []string) string { return v }))
	t.Logf("outline:\n%s", tree.HorizontalString(p))
}

func TestLoadFromMemFs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.textfile")
	defer teardown()
	//
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "list.txt", []byte("a\n    b\n    c\nd\n"), 0644))
	require.NoError(t, fs.Mkdir("dir", 0755))
	opts := &Options{Indent: 4, SyntheticRoot: "list", Fs: fs}
	tree, err := Load("list.txt", opts)
	require.NoError(t, err)
	require.Equal(t, "list .a ..b ..c .d", preorder(t, tree))
	//
	_, err = Load("dir", opts)
	require.ErrorIs(t, err, ErrNotRegularFile)
	_, err = Load("missing.txt", opts)
	require.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.textfile")
	defer teardown()
	//
	var tests = []struct {
		input string
		err   error
	}{
		{"a\nb\n", ErrMultipleRoots},
		{"a\n    b\n", ErrIndentation},
		{"  a\n", ErrIndentation},
		{"a\n   b\n", ErrIndentation},
	}
	for i, test := range tests {
		_, err := Parse(strings.NewReader(test.input), nil)
		require.ErrorIs(t, err, test.err, "test #%d", i)
		t.Logf("test #%d: %v", i, err)
	}
}

func TestParseEmpty(t *testing.T) {
	tree, err := Parse(strings.NewReader("\n# only a comment\n\n"), nil)
	require.NoError(t, err)
	require.True(t, tree.IsEmpty())
	tree, err = Parse(strings.NewReader(""), &Options{SyntheticRoot: "root"})
	require.NoError(t, err)
	require.Equal(t, 1, tree.NodesCount())
}

func TestParseStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arbor.textfile")
	defer teardown()
	//
	input := "root\n      too deep\n" + strings.Repeat("  child\n", 100)
	done := make(chan error, 1)
	go func() {
		_, err := Parse(strings.NewReader(input), nil)
		done <- err
	}()
	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrIndentation)
	case <-time.After(3 * time.Second):
		t.Fatal("outline with invalid line 2 did not terminate")
	}
}
