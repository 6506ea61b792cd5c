/*
Package bst implements a binary search tree as a client of arbor's arena trees.

A BSTree never re-arranges nodes: values are placed by comparison, descending
from the root, and appended to the arena. Duplicates are allowed and are placed
right of (after) equal values. There is no balancing and no deletion.

Nodes of a BSTree have at most two children. With two children, the first one
is the left (lesser) child. A single child is not positioned, but interpreted by
comparing it with its parent.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package bst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor.bst'
func tracer() tracing.Trace {
	return tracing.Select("arbor.bst")
}
