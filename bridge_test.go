// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slco_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"github.com/raintherrien/slco"
)

func TestDriveCompletes(t *testing.T) {
	c := &counter{limit: 5}
	c.Reset()
	if st := slco.Drive(c); st != slco.Complete {
		t.Fatalf("got %v, want complete", st)
	}
	if c.i != 5 {
		t.Fatalf("i = %d, want 5", c.i)
	}
}

func TestDriveErrored(t *testing.T) {
	root, _ := chain(2, new(failing))
	if st := slco.Drive(root); st != slco.Errored {
		t.Fatalf("got %v, want errored", st)
	}
}

func TestStepOpDispatch(t *testing.T) {
	c := &counter{limit: 1}
	c.Reset()
	op := slco.StepOp{Proc: slco.Bind(c)}
	if st := op.DispatchStep().(slco.Status); st != slco.Yielded {
		t.Fatalf("got %v, want yielded", st)
	}
	if st := op.DispatchStep().(slco.Status); st != slco.Complete {
		t.Fatalf("got %v, want complete", st)
	}
}

func TestReflectHandlerPolicy(t *testing.T) {
	// A custom handler abandons the chain after the third yield by
	// short-circuiting; the routine stays suspended and resumable.
	c := &counter{limit: 10}
	c.Reset()
	yields := 0
	st := kont.Handle(slco.Reflect(c), kont.HandleFunc[slco.Status](func(op kont.Operation) (kont.Resumed, bool) {
		sop, ok := op.(interface{ DispatchStep() kont.Resumed })
		if !ok {
			t.Fatalf("unexpected operation %T", op)
		}
		v := sop.DispatchStep()
		if v.(slco.Status) == slco.Yielded {
			yields++
			if yields == 3 {
				return v, false
			}
		}
		return v, true
	}))
	if st != slco.Yielded {
		t.Fatalf("got %v, want yielded", st)
	}
	if c.i != 3 {
		t.Fatalf("i = %d, want 3", c.i)
	}
	if st := slco.Invoke(c); st != slco.Yielded || c.i != 4 {
		t.Fatalf("abandoned routine: got %v with i = %d, want yielded with 4", st, c.i)
	}
}
