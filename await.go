// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slco

// Await steps child with the root handle p, after first recording site
// as the caller's own resume marker. The caller forwards statuses for
// which [Status.Propagates] is true and falls through otherwise:
//
//	case 1:
//		if st := c.Await(1, p, &c.child); st.Propagates() {
//			return st
//		}
//		// child completed or yielded; continue on this same step
//
// A propagated suspension surfaces unchanged at the root. The next step
// of the caller dispatches back to site, re-enters the await, and
// re-steps the same child from wherever it left off. Complete and
// Yielded do not propagate: the caller continues past the await on the
// same step, reading a yielded value from the child's locals if it
// wants one.
//
// Child state is owned by the embedder like any other; nesting it as a
// field inside the caller's locals keeps the whole call tree's
// persisted state one contiguous owned structure.
func (s *State) Await(site Marker, p Proc, child Routine) Status {
	s.resume = site
	return child.Step(p)
}

// AwaitFunc is [State.Await] for a plain function instead of a routine:
// fn is invoked with the root handle and its status obeys the same
// propagation rule. fn persists nothing in s; external functions that
// suspend (returning Scheduled after registering p with a scheduler, or
// Waiting via [StatusOf] on a non-blocking operation) are simply called
// again when the caller resumes:
//
//	case 2:
//		if st := c.AwaitFunc(2, p, c.send); st.Propagates() {
//			return st
//		}
func (s *State) AwaitFunc(site Marker, p Proc, fn func(Proc) Status) Status {
	s.resume = site
	return fn(p)
}
