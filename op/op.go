// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements operation lists. An operation is a value
describing something the host should know about the current frame:
an input handler registration, or a request to redraw.

Operations are added to an Ops list by calling their Add method,
and the list is replayed by a consumer such as io/router.Router
every frame.
*/
package op

import (
	"time"
)

// Ops holds a list of operations to be used in a single frame.
// The zero value is an empty list ready for use.
type Ops struct {
	refs []interface{}
}

// InvalidateOp requests a redraw, at the given time or, if At is the
// zero value, as soon as possible.
type InvalidateOp struct {
	At time.Time
}

// Reset the Ops, preparing it for re-use.
func (o *Ops) Reset() {
	o.refs = o.refs[:0]
}

// Write an operation to the list. It is used by operation
// implementations; see the Add methods instead.
func (o *Ops) Write(ref interface{}) {
	o.refs = append(o.refs, ref)
}

// Refs returns the operations written since the last Reset, in
// order.
func (o *Ops) Refs() []interface{} {
	return o.refs
}

// Add the redraw request to the operation list.
func (r InvalidateOp) Add(o *Ops) {
	o.Write(r)
}
