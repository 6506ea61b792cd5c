/*
Package console prints tree renderings to terminals.

Glyphs and labels of a rendering may be colored differently, and lines wider
than the terminal may be truncated. Package console also lists the arena of a
tree as a table, which is helpful for debugging layouts.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor.console'
func tracer() tracing.Trace {
	return tracing.Select("arbor.console")
}
