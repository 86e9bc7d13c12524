package sparcv9

func (b *Backend) mmioReadByte(addr uint64) byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mmio[addr&0xFFFF]
}

func (b *Backend) mmioWriteByte(addr uint64, v byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mmio[addr&0xFFFF] = v
}
