// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slco

// Routine is a stackless resumable procedure: persisted state bound to
// an entry point. Step executes the body from the site identified by
// the resume marker and returns when the body completes, errors, or
// reaches a suspension primitive — exactly one step of forward progress
// per call, mutating only the receiver's state.
//
// Implementations embed [State] in their locals struct and define Step
// on the pointer type. p is the root process handle of the current call
// chain and must be passed through to [State.Await] and
// [State.AwaitFunc] unchanged.
type Routine interface {
	Step(p Proc) Status
}

// Proc is the root process handle of one invocation chain: it binds the
// topmost routine in a tree of awaited routines. A fresh handle is
// constructed per top-level invocation and threaded through nested
// awaits, so every depth shares the same root. Resuming the handle
// after a suspension descends to the exact suspended leaf, because
// every frame's resume marker independently re-enters its await site.
type Proc struct {
	root Routine
}

// Bind constructs a process handle for r without stepping it, for
// embedders that retain the handle between suspensions (a scheduler
// keeping Scheduled chains, for example). Otherwise use [Invoke].
func Bind(r Routine) Proc {
	return Proc{root: r}
}

// Invoke makes one step of forward progress on r: execution starts at
// the site identified by r's resume marker and runs until the body
// completes, errors, or suspends, at which point the marker identifies
// that exact site. The returned status is the contract with the
// embedder: Scheduled means the handle was registered externally and
// will be resumed when its condition is satisfied; Waiting means retry
// this call chain promptly; Yielded means a value is available in the
// locals.
//
// r must not already be in a terminal outcome.
func Invoke(r Routine) Status {
	return r.Step(Proc{root: r})
}

// Resume re-enters the bound call chain: one step of forward progress,
// equivalent to [Invoke] on the bound routine.
func (p Proc) Resume() Status {
	return p.root.Step(p)
}

// Routine returns the routine bound to the handle, typically to read
// locals after a Yielded step.
func (p Proc) Routine() Routine {
	return p.root
}
