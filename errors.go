package arbor

import "fmt"

// IndexObject tells which kind of index a NodeIndexError complains about.
type IndexObject string

const (
	// ObjectNode flags an invalid node handle.
	ObjectNode IndexObject = "Node"
	// ObjectChild flags an invalid insertion position within a list of children.
	ObjectChild IndexObject = "Child"
)

// NodeIndexError is returned by mutating tree operations which have been called
// with an out-of-range index. Given is the offending value, Allowed the exclusive
// upper bound which has been valid at the time of the call.
//
// NodeIndexError wraps ErrIndexOutOfRange.
type NodeIndexError struct {
	Object  IndexObject
	Given   int
	Allowed int
}

func (e *NodeIndexError) Error() string {
	return fmt.Sprintf("%s index out of range: given %d, allowed < %d", e.Object, e.Given, e.Allowed)
}

// Unwrap makes NodeIndexError match ErrIndexOutOfRange with errors.Is.
func (e *NodeIndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func nodeIndexError(object IndexObject, given, allowed int) error {
	tracer().P("object", string(object)).Debugf("index %d out of range [0…%d)", given, allowed)
	return &NodeIndexError{Object: object, Given: given, Allowed: allowed}
}
