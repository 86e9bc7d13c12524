package loongarch64

import "sync/atomic"

var stableCounter atomic.Uint64

func (b *Backend) ReadStableCounter() uint64 { return stableCounter.Load() }
func (b *Backend) TickTimer()                { stableCounter.Add(1) }
