package arm64

// GICv3 distributor register offsets (relative to DefaultConfig.IntcBase),
// enough of the contract to enable/disable and acknowledge an SPI line.
const (
	gicdCtlr      = 0x0000
	gicdISenabler = 0x0100 // set-enable registers, 32 IRQs per word
)

func (b *Backend) initGIC() {
	b.mmioWrite32(gicdCtlr, 1) // enable group 1 routing
}

func (b *Backend) EnableIRQ(line uint32) {
	word := gicdISenabler + (line/32)*4
	b.mmioWrite32(word, b.mmioRead32(word)|(1<<(line%32)))
}

func (b *Backend) DisableIRQ(line uint32) {
	word := gicdISenabler + (line/32)*4
	b.mmioWrite32(word, b.mmioRead32(word)&^(1<<(line%32)))
}

// ClaimIRQ and CompleteIRQ model reading/writing the CPU interface's IAR
// and EOIR registers; the simulated model has no pending-interrupt queue
// of its own; a test harness drives Dispatch directly with a synthesized
// ExceptionContext instead.
func (b *Backend) ClaimIRQ() uint32    { return 0 }
func (b *Backend) CompleteIRQ(id uint32) {}
