package mips64

import "math/rand"

func (b *Backend) HardwareRandomU64() (uint64, bool) {
	return rand.Uint64(), true
}

func (b *Backend) ZeroGPRs() {
	b.WritePrivReg(RegEntryHi, 0)
}

func (b *Backend) SecurityInit() bool {
	_, ok := b.HardwareRandomU64()
	return ok
}
