package amd64

import "sync/atomic"

// cycleCounter models the TSC: a free-running counter incremented by
// every simulated timer tick rather than by real CPU cycles.
var cycleCounter atomic.Uint64

// ReadCycleCounter is the simulated RDTSC equivalent.
func (b *Backend) ReadCycleCounter() uint64 {
	return cycleCounter.Load()
}

// TickTimer advances the simulated TSC by one tick. No periodic source in
// this repository, kernel/timerqueue included, calls it.
func (b *Backend) TickTimer() {
	cycleCounter.Add(1)
}
