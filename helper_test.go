// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slco_test

import (
	"code.hybscloud.com/iox"
	"github.com/raintherrien/slco"
)

// drive steps the handle to a terminal status or a Scheduled hand-off,
// retrying Waiting with adaptive backoff (the "retry the same call
// chain promptly" contract) and resuming Yielded immediately.
// Used by tests that exercise the embedder-side retry loop.
func drive(p slco.Proc) slco.Status {
	var bo iox.Backoff
	for {
		st := p.Resume()
		switch st {
		case slco.Waiting:
			bo.Wait()
		case slco.Yielded:
			bo.Reset()
		default:
			return st
		}
	}
}
