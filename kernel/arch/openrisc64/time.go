package openrisc64

import "sync/atomic"

// ttCounter models the OpenRISC tick-timer TTCR register.
var ttCounter atomic.Uint64

func (b *Backend) ReadTickTimer() uint64 { return ttCounter.Load() }
func (b *Backend) TickTimer()            { ttCounter.Add(1) }
