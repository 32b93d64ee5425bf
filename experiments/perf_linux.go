//go:build linux

package experiments

import (
	perf "github.com/hodgesds/perf-utils"
)

// countInstructions runs f under the hardware instruction counter. ok is
// false when the kernel refuses perf events (f may then not have run, so
// callers only pass throwaway work).
func countInstructions(f func()) (instructions uint64, ok bool) {
	profiled, err := perf.CPUInstructions(func() error {
		f()
		return nil
	})
	if err != nil || profiled == nil {
		return 0, false
	}
	return uint64(profiled.Value), true
}
