package sparcv9

const intcMaskBase = 0x20

func (b *Backend) initIntc() {}

func (b *Backend) EnableIRQ(level uint32) {
	b.mmioWriteByte(DefaultConfig.IntcBase+intcMaskBase, byte(level))
	b.WritePrivReg(RegPIL, 0)
}

func (b *Backend) DisableIRQ(level uint32) {
	b.WritePrivReg(RegPIL, 15)
}

func (b *Backend) ClaimIRQ() uint32      { return 0 }
func (b *Backend) CompleteIRQ(id uint32) {}
