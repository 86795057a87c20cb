// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slco

import (
	"code.hybscloud.com/kont"
)

// StepOp is the effect operation for advancing a suspended process by
// one step. Computations built with [Reflect] perform it before every
// step; handlers resume with the resulting [Status].
type StepOp struct {
	kont.Phantom[Status]
	Proc Proc
}

// DispatchStep makes one step of forward progress on the bound chain.
func (op StepOp) DispatchStep() kont.Resumed {
	return op.Proc.Resume()
}

// stepDispatcher is the structural interface for process-stepping
// operations.
type stepDispatcher interface {
	DispatchStep() kont.Resumed
}

// Reflect lifts a routine into the kont effect world: the returned
// computation performs [StepOp] for every step of r and completes with
// the terminal status. Handlers observe each suspension and supply
// resumption policy — resume with the dispatched status to continue, or
// short-circuit to abandon the chain — so the routine itself stays
// policy-free.
func Reflect(r Routine) kont.Eff[Status] {
	return reflectLoop(Bind(r))
}

func reflectLoop(p Proc) kont.Eff[Status] {
	return kont.Bind(kont.Perform(StepOp{Proc: p}), func(st Status) kont.Eff[Status] {
		if st.Terminal() {
			return kont.Pure(st)
		}
		return reflectLoop(p)
	})
}

// StepHandler is the immediate-resumption handler: every dispatched
// step resumes at once. This realizes the Yielded contract, ignores the
// deferral a Scheduled external arranged, and busy-retries Waiting;
// embedders with scheduling policy supply their own handler via
// [kont.HandleFunc] instead.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type StepHandler[R any] struct{}

// Dispatch implements kont.Handler via structural interface assertion.
func (StepHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(stepDispatcher)
	if !ok {
		panic("slco: unhandled effect in StepHandler")
	}
	return sop.DispatchStep(), true
}

// Drive runs r to a terminal status under [StepHandler].
func Drive(r Routine) Status {
	return kont.Handle(Reflect(r), StepHandler[Status]{})
}
