// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slco provides stackless resumable procedures ("routines"):
// procedures that suspend at explicit points, return a status describing
// why they suspended, and later resume from exactly that point. No
// goroutines, channels, or runtime suspension support are involved; the
// embedder owns all state and drives every step.
//
// # Architecture
//
//   - State: Persisted resume marker plus, through embedding, the routine's
//     locals. Allocated and owned entirely by the embedder. [State.Reset]
//     prepares it for (re)use.
//   - Stepping: [Invoke] and [Proc.Resume] make exactly one step of forward
//     progress per call, returning a [Status].
//   - Suspension: [State.Yield], [State.Wait], and the propagating branch of
//     [State.Await] are the only suspension points. Nothing suspends
//     mid-statement.
//   - Propagation: Errored, Scheduled, and Waiting surface unchanged at the
//     root of a nested await chain; resumption re-descends to the exact
//     suspended leaf because every frame's marker re-enters its await site.
//
// # Defining a Routine
//
// Embed [State] in a locals struct and implement [Routine] on the pointer
// type. The body is an explicit state machine: every suspension site is
// assigned a small sequential [Marker] at definition time, and the body
// dispatches on [State.At] with a switch. Site 0 is the start sentinel.
//
//	type counter struct {
//		slco.State
//		I uint8
//	}
//
//	func (c *counter) Step(p slco.Proc) slco.Status {
//		switch c.At() {
//		case 0:
//			c.I = 0
//			fallthrough
//		case 1:
//			if c.I != math.MaxUint8 {
//				c.I++
//				return c.Yield(1)
//			}
//		}
//		return slco.Complete
//	}
//
// # Composition
//
// A routine steps another routine with [State.Await], passing the root
// [Proc] through so every depth shares one handle. Every await site is
// followed by the propagation check:
//
//	if st := c.Await(1, p, &c.child); st.Propagates() {
//		return st
//	}
//
// Complete and Yielded fall through: a child's yield is ordinary forward
// progress for the parent, which reads the value from the child's locals.
// [State.AwaitFunc] awaits a plain function under the same rule; combined
// with [StatusOf] it turns any non-blocking operation into a retryable
// external await.
//
// # External Scheduling Contract
//
// The package never resumes a suspended routine on its own, and ships no
// run queue, reactor, or retry loop. A Scheduled status means "store the
// handle and resume when the external condition is satisfied"; it
// originates in awaited external functions that registered the handle
// somewhere. A Waiting status means "retry this call chain promptly".
// A Yielded status means "a value is available in the locals; resume
// promptly". Policy for all three belongs to the embedder.
//
// # Integration
//
// [Reflect] lifts a routine into the [code.hybscloud.com/kont] effect
// world: the computation performs [StepOp] before every step, so kont
// handlers observe each suspension and supply resumption policy. [Drive]
// evaluates with the immediate-resumption [StepHandler].
//
// # Example
//
//	c := new(counter)
//	c.Reset()
//	for slco.Invoke(c) == slco.Yielded {
//		fmt.Println("Yielded:", c.I)
//	}
//
// Driving the same State from two goroutines at once is undefined
// behavior: State carries no synchronization. Distinct States are fully
// independent. Invoking a routine after it returned Complete or Errored
// is likewise undefined; track terminal status in the embedder.
package slco
