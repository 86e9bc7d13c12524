package amd64

import "context"

// Keyboard controller ports used for the classic 8042 reset pulse.
const (
	kbdDataPort   = 0x60
	kbdStatusPort = 0x64
	kbdCmdPort    = 0x64
)

// kbdWaitInputClear polls the 8042 status register for its input buffer to
// go empty, bounded to the same ~100,000 iterations as the original so a
// stuck controller cannot hang shutdown forever.
func (b *Backend) kbdWaitInputClear() bool {
	for i := 0; i < 100_000; i++ {
		if b.inb(kbdStatusPort)&0x02 == 0 {
			return true
		}
	}
	return false
}

// Reboot pulses the 8042 reset line when the controller reports ready
// (skipping the pulse if it never does), then parks the core in haltLoop
// in either case.
func (b *Backend) Reboot(ctx context.Context) {
	b.DisableInterrupts()
	if b.kbdWaitInputClear() {
		b.outb(kbdCmdPort, 0xFE)
	}
	b.haltLoop(ctx)
}

// Shutdown disables interrupts and parks the core.
func (b *Backend) Shutdown(ctx context.Context) {
	b.DisableInterrupts()
	b.haltLoop(ctx)
}

func (b *Backend) haltLoop(ctx context.Context) {
	b.Halt(ctx)
}
