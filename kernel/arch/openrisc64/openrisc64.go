// Package openrisc64 models the OpenRISC-64 platform backend: simulated
// MMIO, separate software-managed instruction and data TLBs, and an
// MMIO-magic-sequence power controller.
package openrisc64

import (
	"context"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/platform"
)

const (
	RegSR uint32 = iota // supervision register
	RegEEAR             // exception EA register
	RegEPCR             // exception PC register
)

type Backend struct {
	mu   sync.Mutex
	mem  *memsim.Space
	mmio [0x10000]byte
	sr   uint64
	eear uint64
	epcr uint64
	itlb [tlbEntries]tlbEntry
	dtlb [tlbEntries]tlbEntry
}

// DefaultConfig: openrisc64's original arch dir has neither a console.rs
// nor a dtb.rs, so this default is the only hardware configuration this
// backend has, matching the original's lack of a DTB override path here.
var DefaultConfig = hwconfig.Config{
	ConsoleBase: 0x9000_0000,
	RAMSize:     32 * 1024 * 1024,
	IntcBase:    0x9800_0000,
}

func New() platform.Contract { return &Backend{mem: memsim.NewSpace(DefaultConfig.RAMSize)} }

func (b *Backend) InitHardware() {
	b.DisableInterrupts()
	b.initUART(DefaultConfig.ConsoleBase)
	InitMMU(b)
	b.initIntc()
}

func (b *Backend) DebugPrint(data []byte) {
	for _, c := range data {
		b.uartWriteByte(DefaultConfig.ConsoleBase, c)
	}
}

func (b *Backend) Halt(ctx context.Context) { <-ctx.Done() }

func (b *Backend) WriteByteToAddress(addr uint64, data byte) { b.mem.WriteByte(addr, data) }
func (b *Backend) ReadByteFromAddress(addr uint64) byte      { return b.mem.ReadByte(addr) }

func (b *Backend) ReadPrivReg(id uint32) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegSR:
		return b.sr
	case RegEEAR:
		return b.eear
	case RegEPCR:
		return b.epcr
	default:
		return 0
	}
}

func (b *Backend) WritePrivReg(id uint32, v uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegSR:
		b.sr = v
	case RegEEAR:
		b.eear = v
	case RegEPCR:
		b.epcr = v
	}
}

// DisableInterrupts/EnableInterrupts model SR.IEE (external interrupt
// enable).
func (b *Backend) DisableInterrupts() {
	b.mu.Lock()
	b.sr &^= 1 << 2
	b.mu.Unlock()
}

func (b *Backend) EnableInterrupts() {
	b.mu.Lock()
	b.sr |= 1 << 2
	b.mu.Unlock()
}

func (b *Backend) BarrierData()  { b.mu.Lock(); b.mu.Unlock() }
func (b *Backend) BarrierInstr() { b.mu.Lock(); b.mu.Unlock() }
