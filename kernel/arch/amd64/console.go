package amd64

// 16550 UART register offsets from the COM1 base port.
const (
	uartData  = 0
	uartIER   = 1
	uartFCR   = 2
	uartLCR   = 3
	uartLSR   = 5
	lsrTHRE   = 1 << 5
)

// initUART programs the simulated 16550 at base with 8N1 framing and
// enables its FIFOs, the same sequencing a real boot-time UART driver runs
// before it can transmit.
func (b *Backend) initUART(base uint16) {
	b.outb(base+uartLCR, 0x80) // enable DLAB
	b.outb(base+0, 0x01)       // divisor low: 115200 baud
	b.outb(base+1, 0x00)       // divisor high
	b.outb(base+uartLCR, 0x03) // 8N1, DLAB off
	b.outb(base+uartFCR, 0xC7) // enable+clear FIFOs, 14-byte trigger
	b.outb(base+4, 0x0B)       // MCR: RTS/DTR/OUT2
	b.outb(base+uartLSR, lsrTHRE) // transmit holding register starts empty/ready
}

// consoleWriteByte transmits one byte, translating '\n' to CRLF, waiting
// for the (simulated, always-ready) transmit-holding-register-empty bit.
func (b *Backend) consoleWriteByte(base uint16, c byte) {
	for b.inb(base+uartLSR)&lsrTHRE == 0 {
		// simulated hardware is always ready; loop kept for shape parity
		// with a real polling driver.
	}
	if c == '\n' {
		b.outb(base+uartData, '\r')
	}
	b.outb(base+uartData, c)
	b.outb(base+uartLSR, lsrTHRE)
}
