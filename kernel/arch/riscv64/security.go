package riscv64

import "math/rand"

func (b *Backend) HardwareRandomU64() (uint64, bool) {
	return rand.Uint64(), true
}

func (b *Backend) ZeroGPRs() {
	b.WritePrivReg(RegSIE, 0)
}

// EnableSUM sets SSTATUS.SUM so supervisor code may access user-mapped
// pages when required by the trap path (the riscv64 analogue of amd64's
// NX bit story, since Sv39 PTEs carry X/W/R directly rather than a
// separate NX bit).
func (b *Backend) EnableSUM() {
	sstatus := b.ReadPrivReg(RegSSTATUS)
	b.WritePrivReg(RegSSTATUS, sstatus|(1<<18))
}

func (b *Backend) SecurityInit() bool {
	b.EnableSUM()
	_, ok := b.HardwareRandomU64()
	return ok
}
