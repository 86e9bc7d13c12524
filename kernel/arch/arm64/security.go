package arm64

import "math/rand"

// SCTLR_EL1.M (MMU enable) bit; enabling it here models turning on
// translation after InitMMU has built the tables.
const sctlrM uint64 = 1 << 0

// HardwareRandomU64 models reading RNDR.
func (b *Backend) HardwareRandomU64() (uint64, bool) {
	return rand.Uint64(), true
}

// ZeroGPRs stands in for the callee-saved-register-clearing routine the
// original runs before handing control to an untrusted task. The simulated
// backend has no general-purpose register file, so it clears nothing: it
// writes DAIF back with its current value.
func (b *Backend) ZeroGPRs() {
	b.WritePrivReg(RegDAIF, b.ReadPrivReg(RegDAIF))
}

// EnableMMU sets SCTLR_EL1.M. Derivation of the remaining RES1 bits a real
// SCTLR_EL1 write must preserve is left as an open point, carried forward
// from the original rather than guessed at here.
func (b *Backend) EnableMMU() {
	sctlr := b.ReadPrivReg(RegSCTLR)
	b.WritePrivReg(RegSCTLR, sctlr|sctlrM)
}

func (b *Backend) SecurityInit() bool {
	b.EnableMMU()
	_, ok := b.HardwareRandomU64()
	return ok
}
