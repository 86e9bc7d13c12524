package mips64

const intcEnableBase = 0x10

func (b *Backend) initIntc() {}

func (b *Backend) EnableIRQ(line uint32) {
	word := intcEnableBase + (line/32)*4
	b.mmioWriteByte(DefaultConfig.IntcBase+uint64(word), 0xFF)
}

func (b *Backend) DisableIRQ(line uint32) {
	word := intcEnableBase + (line/32)*4
	b.mmioWriteByte(DefaultConfig.IntcBase+uint64(word), 0)
}

func (b *Backend) ClaimIRQ() uint32      { return 0 }
func (b *Backend) CompleteIRQ(id uint32) {}
