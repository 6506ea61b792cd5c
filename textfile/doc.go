/*
Package textfile loads indented outline files as arbor trees.

An outline has one node per line. The depth of a node is given by its
indentation: every Options.Indent spaces, or every tab, open a new level.
Blank lines and lines starting with '#' are skipped.

	fruit
	  apple
	    braeburn
	  pear

Reading and scanning the file is done by a separate goroutine, which publishes
lines to the tree builder. The tree itself is only touched by the goroutine
calling Load.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor.textfile'
func tracer() tracing.Trace {
	return tracing.Select("arbor.textfile")
}
