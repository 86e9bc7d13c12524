package riscv64

import "sync/atomic"

// timeCounter models the `rdtime` pseudo-instruction / CLINT mtime.
var timeCounter atomic.Uint64

func (b *Backend) ReadTime() uint64 { return timeCounter.Load() }
func (b *Backend) TickTimer()       { timeCounter.Add(1) }
