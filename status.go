// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slco

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Status is the result of one invocation step of a routine:
//
//	Complete  - exited normally; terminal
//	Errored   - exited abnormally; terminal. Diagnostic detail, if any,
//	            is recorded by the routine in its own locals
//	Scheduled - suspended; an external function arranged resumption
//	Waiting   - suspended on an unsatisfied internal condition; the
//	            whole call chain should be retried promptly
//	Yielded   - suspended to hand back a value; resume promptly
//
// Behavior is undefined if a routine that returned Complete or Errored
// is invoked or resumed again.
type Status uint8

const (
	Complete Status = iota
	Errored
	Scheduled
	Waiting
	Yielded
)

// Propagates reports whether a status returned by an awaited child must
// be forwarded to the caller instead of continuing past the await site.
// Errored, Scheduled, and Waiting propagate; Complete and Yielded are
// ordinary forward progress for the parent. Every await site is
// followed by this check (see [State.Await]).
func (st Status) Propagates() bool {
	return st == Errored || st == Scheduled || st == Waiting
}

// Suspended reports whether the routine stopped at a suspension point
// and may legally be resumed.
func (st Status) Suspended() bool {
	return st == Scheduled || st == Waiting || st == Yielded
}

// Terminal reports whether the routine is finished. No further
// invocation is legal after a terminal status.
func (st Status) Terminal() bool {
	return st == Complete || st == Errored
}

func (st Status) String() string {
	switch st {
	case Complete:
		return "complete"
	case Errored:
		return "errored"
	case Scheduled:
		return "scheduled"
	case Waiting:
		return "waiting"
	case Yielded:
		return "yielded"
	}
	return "invalid"
}

// StatusOf maps a non-blocking operation result to an invocation
// status: nil reports Complete, [iox.ErrWouldBlock] reports Waiting
// (the condition is unsatisfied now; retry the call chain), and any
// other error reports Errored. Intended for [State.AwaitFunc] bodies
// over bounded queues and other iox-style non-blocking transports.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Complete
	case errors.Is(err, iox.ErrWouldBlock):
		return Waiting
	}
	return Errored
}
