package arm64

import "sync/atomic"

// cntCounter models CNTVCT_EL0, the architected virtual counter.
var cntCounter atomic.Uint64

func (b *Backend) ReadCounter() uint64 { return cntCounter.Load() }
func (b *Backend) TickTimer()          { cntCounter.Add(1) }
