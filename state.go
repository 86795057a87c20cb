// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slco

// Marker identifies a suspension site within one routine definition.
// Sites are assigned small sequential integers at definition time and
// dispatched with a switch on [State.At]. 0 is the start sentinel and
// must not name a site; markers must be unique within a single Step
// method.
type Marker = int

// State is the persisted resumption state of a routine: the resume
// marker plus, through embedding, the routine's locals. Embed State in
// a locals struct and implement [Routine] on the pointer type.
//
// State is allocated and owned entirely by the embedder (a stack frame,
// a heap object, a field inside a parent routine's locals); the package
// never allocates or frees it. The marker combined with the locals
// fully determines the next step of execution. The zero value runs from
// the start; [State.Reset] restarts and assigns a serial.
type State struct {
	resume Marker
	serial Serial
}

// Reset prepares a state for (re)use: the resume marker returns to the
// start sentinel, discarding any progress made so far, and a fresh
// serial is assigned. Resetting mid-execution is the restart mechanism.
// Locals are not touched; initialize them separately.
func (s *State) Reset() {
	s.resume = 0
	s.serial = nextSerial()
}

// At returns the resume marker: the suspension site execution continues
// from on the next step. Routine bodies dispatch on it:
//
//	switch c.At() {
//	case 0:
//		// first step
//		fallthrough
//	case 1:
//		// resumed after site 1
//	}
func (s *State) At() Marker {
	return s.resume
}

// Serial returns the serial assigned by the most recent [State.Reset],
// or 0 for a zero-value state.
func (s *State) Serial() Serial {
	return s.serial
}

// Yield records site as the resume marker and reports Yielded; the body
// returns it immediately:
//
//	return c.Yield(1)
//
// The next step of the routine dispatches to site with all locals
// intact. Yielded signals a value hand-off: callers typically read the
// locals and resume promptly.
func (s *State) Yield(site Marker) Status {
	s.resume = site
	return Yielded
}

// Wait is [State.Yield] with a Waiting result: the suspension is an
// unsatisfied internal blocking condition rather than a value hand-off,
// and every caller up the await chain forwards it unchanged (see
// [Status.Propagates]).
func (s *State) Wait(site Marker) Status {
	s.resume = site
	return Waiting
}
