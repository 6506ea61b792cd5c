/*
Package arbor offers multi-way trees stored in an arena, together with
pretty-printers drawing them with box-drawing characters.

Arena Trees

A Tree owns all of its nodes in a single growable slice. Nodes are addressed by
integer handles, which are the positions of the nodes within the arena at the
time they were appended. Handles are never re-used and nodes are never removed,
so the handle of a node is stable for the lifetime of the tree. Handle 0 is the
root.

Nodes know their children (in insertion order, which is also the order of
rendering), but not their parent. As a child handle can only be referenced after
it has been appended, the children relation cannot contain a cycle.

	tree := arbor.WithRoot("A")
	b, _ := tree.AddChild(0, "B")
	tree.AddChild(b, "D")
	tree.AddChild(0, "C")

Pretty-Printing

A tree may be rendered in two orientations. HorizontalString puts the root at
the left margin and indents each level of depth to the right:

	<A>
	┣━<B>
	┃ ┗━<D>
	┗━<C>

(this is the output for a Layout which places all children after their parent).
VerticalString puts the root at the top and lets the children hang below:

	 ┏━<A>━┓
	 ┃     ┃
	<B>   <C>

Rendering is configured by PrintParams. Clients may inject a Layout strategy
to control the text of node labels (which may span several lines) and the
number of children to render before (above, or to the left of) their parent.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is used inside the package, where T may name a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

var (
	// ErrIndexOutOfRange is wrapped by every NodeIndexError.
	ErrIndexOutOfRange = errors.New("arbor: index out of range")
	// ErrInvalidParams is flagged for print parameters which cannot be used for rendering.
	ErrInvalidParams = errors.New("arbor: invalid print parameters")
	// ErrCorruptArena is flagged by Check if a structural invariant is violated.
	ErrCorruptArena = errors.New("arbor: corrupt arena")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
