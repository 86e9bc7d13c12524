// Package amd64 models the x86-64 platform backend: simulated port I/O,
// a 4-level PML4 page-table walker, an 8259-PIC-shaped interrupt
// controller, and a register-struct task context switched by a struct
// copy instead of the original's push/pop-and-jmp trampoline.
package amd64

import (
	"context"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/platform"
)

// Privileged register ids, the software-model stand-ins for CR0/CR3/EFER
// access.
const (
	RegCR0 uint32 = iota
	RegCR3
	RegEFER
	RegRFLAGS
)

// Backend implements platform.Contract for x86-64.
type Backend struct {
	mu       sync.Mutex
	mem      *memsim.Space
	ports    [0x10000]byte
	cr0      uint64
	cr3      uint64
	efer     uint64
	rflags   uint64
	irqsOff  bool
}

// DefaultConfig is amd64's compiled-in hardware configuration, used when no
// bootconfig override is supplied (amd64 has no dtb.rs in the original, so
// its defaults live here rather than in a dedicated dtb.go).
var DefaultConfig = hwconfig.Config{
	ConsoleBase: 0x3F8, // COM1
	RAMSize:     64 * 1024 * 1024,
	IntcBase:    0x20, // PIC1 command port
}

// New constructs the amd64 backend with a simulated RAM of
// DefaultConfig.RAMSize bytes.
func New() platform.Contract {
	return &Backend{
		mem: memsim.NewSpace(DefaultConfig.RAMSize),
	}
}

// InitHardware runs the disable-interrupts-then-ready sequence the
// original's platform_init performs, then sets up paging and the PIC.
func (b *Backend) InitHardware() {
	b.DisableInterrupts()
	b.initUART(uint16(DefaultConfig.ConsoleBase))
	pml4 := InitMMU(b.mem)
	b.WritePrivReg(RegCR3, pml4)
	b.initPIC()
}

func (b *Backend) DebugPrint(data []byte) {
	for _, c := range data {
		b.consoleWriteByte(uint16(DefaultConfig.ConsoleBase), c)
	}
}

// Halt blocks until ctx is cancelled, the software-model stand-in for an
// infinite hlt loop.
func (b *Backend) Halt(ctx context.Context) {
	<-ctx.Done()
}

func (b *Backend) WriteByteToAddress(addr uint64, data byte) {
	b.mem.WriteByte(addr, data)
}

func (b *Backend) ReadByteFromAddress(addr uint64) byte {
	return b.mem.ReadByte(addr)
}

func (b *Backend) ReadPrivReg(id uint32) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegCR0:
		return b.cr0
	case RegCR3:
		return b.cr3
	case RegEFER:
		return b.efer
	case RegRFLAGS:
		return b.rflags
	default:
		return 0
	}
}

func (b *Backend) WritePrivReg(id uint32, v uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegCR0:
		b.cr0 = v
	case RegCR3:
		b.cr3 = v
	case RegEFER:
		b.efer = v
	case RegRFLAGS:
		b.rflags = v
	}
}

func (b *Backend) DisableInterrupts() {
	b.mu.Lock()
	b.irqsOff = true
	b.mu.Unlock()
}

func (b *Backend) EnableInterrupts() {
	b.mu.Lock()
	b.irqsOff = false
	b.mu.Unlock()
}

// BarrierData is the software-model stand-in for mfence.
func (b *Backend) BarrierData() {
	b.mu.Lock()
	b.mu.Unlock()
}

// BarrierInstr is the software-model stand-in for a serializing
// instruction; amd64 has no separate instruction barrier primitive in the
// original, so this mirrors BarrierData.
func (b *Backend) BarrierInstr() {
	b.BarrierData()
}
