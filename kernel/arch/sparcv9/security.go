package sparcv9

import "math/rand"

func (b *Backend) HardwareRandomU64() (uint64, bool) {
	return rand.Uint64(), true
}

// ZeroGPRs models clearing the visible register window before handing
// control to an untrusted task; the window-flush PrePanic performs on a
// fatal trap is the same operation run for a different reason.
func (b *Backend) ZeroGPRs() {
	b.PrePanic()
}

func (b *Backend) SecurityInit() bool {
	_, ok := b.HardwareRandomU64()
	return ok
}
