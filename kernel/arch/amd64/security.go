package amd64

import "math/rand"

// EFER.NXE and CR0.WP bits, matching the original's security_init.
const (
	eferNXE uint64 = 1 << 11
	cr0WP   uint64 = 1 << 16
)

// HardwareRandomU64 models RDRAND: real hardware can fail transiently and
// callers must retry, so this returns the same (value, ok) shape.
func (b *Backend) HardwareRandomU64() (uint64, bool) {
	return rand.Uint64(), true
}

// ZeroGPRs models the original's inline-asm register-clearing routine; in
// the simulated backend there is no physical register file to scrub, so
// this clears the one piece of carried state that plays that role: the
// simulated RFLAGS register.
func (b *Backend) ZeroGPRs() {
	b.WritePrivReg(RegRFLAGS, 0)
}

// EnableNX sets EFER.NXE so no-execute page mappings are honored.
func (b *Backend) EnableNX() {
	efer := b.ReadPrivReg(RegEFER)
	b.WritePrivReg(RegEFER, efer|eferNXE)
}

// SecurityInit runs EnableNX, sets CR0.WP so the kernel can't write
// read-only-mapped pages, and self-tests the RNG, mirroring the original's
// security_init sequencing.
func (b *Backend) SecurityInit() bool {
	b.EnableNX()
	cr0 := b.ReadPrivReg(RegCR0)
	b.WritePrivReg(RegCR0, cr0|cr0WP)
	_, ok := b.HardwareRandomU64()
	return ok
}
