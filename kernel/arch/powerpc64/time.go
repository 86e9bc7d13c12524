package powerpc64

import "sync/atomic"

// tbCounter models the PowerPC Time Base register.
var tbCounter atomic.Uint64

func (b *Backend) ReadTimeBase() uint64 { return tbCounter.Load() }
func (b *Backend) TickTimer()           { tbCounter.Add(1) }
