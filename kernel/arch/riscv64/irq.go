package riscv64

// PLIC register layout: priority array, then per-context enable bits,
// then per-context threshold/claim.
const (
	plicPriorityBase = 0x000000
	plicEnableBase   = 0x002000
	plicClaimBase    = 0x200004
)

func (b *Backend) initPLIC() {
	// leave every source at priority 0 (disabled) until EnableIRQ raises it
}

func (b *Backend) EnableIRQ(source uint32) {
	b.mmioWriteByte(DefaultConfig.IntcBase+plicPriorityBase+uint64(source)*4, 1)
	word := plicEnableBase + (source/32)*4
	b.mmioWriteByte(DefaultConfig.IntcBase+uint64(word), 0xFF)
}

func (b *Backend) DisableIRQ(source uint32) {
	b.mmioWriteByte(DefaultConfig.IntcBase+plicPriorityBase+uint64(source)*4, 0)
}

// ClaimIRQ/CompleteIRQ model reading/writing the PLIC context claim
// register; the simulated model leaves real interrupt injection to a test
// harness constructing an ExceptionContext directly.
func (b *Backend) ClaimIRQ() uint32      { return 0 }
func (b *Backend) CompleteIRQ(id uint32) {}
