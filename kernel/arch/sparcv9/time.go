package sparcv9

import "sync/atomic"

// tickCounter models the %tick register.
var tickCounter atomic.Uint64

func (b *Backend) ReadTick() uint64 { return tickCounter.Load() }
func (b *Backend) TickTimer()       { tickCounter.Add(1) }
