/*
Package html mirrors HTML element hierarchies into arbor trees and wraps tree
renderings into HTML.

Element nodes are represented by their tag name, text nodes by their
(trimmed and quoted) text. Whitespace-only text, comments and doctype nodes
are skipped.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FragmentRoot is the value of the synthetic root node, which is inserted if
// an HTML fragment has more than one top-level node.
const FragmentRoot = "#fragment"

// ErrIllegalArguments is flagged if a nil node is passed.
var ErrIllegalArguments = errors.New("arbor/html: illegal arguments")

// tracer writes to trace with key 'arbor.html'
func tracer() tracing.Trace {
	return tracing.Select("arbor.html")
}

// TreeFromNode creates a tree for an HTML node and all of its descendents.
// If n itself is a node which is skipped, the resulting tree is empty.
func TreeFromNode(n *html.Node) (*arbor.Tree[string], error) {
	if n == nil {
		return nil, ErrIllegalArguments
	}
	tree := arbor.New[string]()
	if v, ok := nodeValue(n); ok {
		tree.SetRoot(v)
		if err := collectNodes(tree, 0, n); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// TreeFromHTML parses an HTML fragment, as found in the body of a document, and
// creates a tree from its nodes. Fragments with more than one top-level node
// will be grouped below a node FragmentRoot.
func TreeFromHTML(input io.Reader) (*arbor.Tree[string], error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	var top []*html.Node
	for _, n := range nodes {
		if _, ok := nodeValue(n); ok {
			top = append(top, n)
		}
	}
	tracer().Debugf("HTML fragment has %d top-level nodes", len(top))
	switch len(top) {
	case 0:
		return arbor.New[string](), nil
	case 1:
		return TreeFromNode(top[0])
	}
	tree := arbor.WithRoot(FragmentRoot)
	for _, n := range top {
		if err := appendNode(tree, 0, n); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func appendNode(tree *arbor.Tree[string], parent int, n *html.Node) error {
	v, ok := nodeValue(n)
	if !ok {
		return nil
	}
	h, err := tree.AddChild(parent, v)
	if err != nil {
		return err
	}
	return collectNodes(tree, h, n)
}

func collectNodes(tree *arbor.Tree[string], h int, n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := appendNode(tree, h, c); err != nil {
			return err
		}
	}
	return nil
}

func nodeValue(n *html.Node) (string, bool) {
	switch n.Type {
	case html.ElementNode:
		return n.Data, true
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return "", false
		}
		return fmt.Sprintf("%q", text), true
	case html.DocumentNode:
		return "#document", true
	}
	return "", false
}

// Pre wraps a text, usually the rendering of a tree, into a <pre> element
// of class "arbor".
func Pre(text string) *html.Node {
	pre := &html.Node{
		Type:     html.ElementNode,
		Data:     "pre",
		DataAtom: atom.Pre,
		Attr:     []html.Attribute{{Key: "class", Val: "arbor"}},
	}
	pre.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: text,
	})
	return pre
}

// WritePre writes text as an HTML <pre> element to w, escaping it as necessary.
func WritePre(w io.Writer, text string) error {
	return html.Render(w, Pre(text))
}
