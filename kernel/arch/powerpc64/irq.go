package powerpc64

// MPIC per-source vector-priority register base.
const mpicVPRBase = 0x10000

func (b *Backend) initMPIC() {}

func (b *Backend) EnableIRQ(source uint32) {
	b.mmioWriteByte(DefaultConfig.IntcBase+mpicVPRBase+uint64(source)*0x20, 0x00)
}

func (b *Backend) DisableIRQ(source uint32) {
	b.mmioWriteByte(DefaultConfig.IntcBase+mpicVPRBase+uint64(source)*0x20, 0x80)
}

func (b *Backend) ClaimIRQ() uint32      { return 0 }
func (b *Backend) CompleteIRQ(id uint32) {}
