package mips64

import "sync/atomic"

// countCounter models CP0 Count, MIPS's free-running cycle counter.
var countCounter atomic.Uint64

func (b *Backend) ReadCount() uint64 { return countCounter.Load() }
func (b *Backend) TickTimer()        { countCounter.Add(1) }
