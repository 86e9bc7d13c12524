package arm64

// PL011 UART register offsets (byte offsets from the UART base MMIO
// window).
const (
	pl011DR   = 0x00
	pl011FR   = 0x18
	pl011IBRD = 0x24
	pl011FBRD = 0x28
	pl011LCRH = 0x2C
	pl011CR   = 0x30

	pl011FRTxff = 1 << 5 // transmit FIFO full
	pl011CREN   = 1 << 0
	pl011CRTxE  = 1 << 8
	pl011CRRxE  = 1 << 9
)

// initPL011 programs the simulated PL011 at a fixed baud divisor and
// enables the UART, transmitter, and receiver.
func (b *Backend) initPL011(base uint64) {
	_ = base
	b.mmioWrite32(pl011IBRD, 26)
	b.mmioWrite32(pl011FBRD, 3)
	b.mmioWrite32(pl011LCRH, 0x70) // 8-bit, FIFO enabled
	b.mmioWrite32(pl011CR, pl011CREN|pl011CRTxE|pl011CRRxE)
}

func (b *Backend) pl011WriteByte(base uint64, c byte) {
	_ = base
	for b.mmioRead32(pl011FR)&pl011FRTxff != 0 {
	}
	b.mmioWrite32(pl011DR, uint32(c))
}
