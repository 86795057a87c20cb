// ©Rain Therrien 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slco

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing state-incarnation identifier.
// Each call to [State.Reset] assigns the next serial value; embedders
// key run queues or correlate diagnostics with it. Serials never
// influence resumption.
type Serial = uint32

// counter is the global monotonic counter for state serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
