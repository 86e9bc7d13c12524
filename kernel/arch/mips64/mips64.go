// Package mips64 models the MIPS-64 platform backend: simulated MMIO, a
// software-managed TLB (EntryHi/EntryLo0/EntryLo1/PageMask/Index-shaped),
// and an MMIO-magic-sequence power controller.
package mips64

import (
	"context"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/platform"
)

const (
	RegStatus uint32 = iota // CP0 Status
	RegCause                // CP0 Cause
	RegEntryHi
)

type Backend struct {
	mu     sync.Mutex
	mem    *memsim.Space
	mmio   [0x10000]byte
	status uint64
	cause  uint64
	entryHi uint64
	tlb    [tlbEntries]tlbEntry
}

// DefaultConfig has no original dtb.rs to ground a device-tree override
// path on (mips64's arch dir lacks one); the board default below is the
// only hardware configuration this backend has.
var DefaultConfig = hwconfig.Config{
	ConsoleBase: 0xB800_03F8, // KSEG1-mapped 16550-alike, MIPS Malta convention
	RAMSize:     64 * 1024 * 1024,
	IntcBase:    0xB800_0200,
}

func New() platform.Contract {
	return &Backend{mem: memsim.NewSpace(DefaultConfig.RAMSize)}
}

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
	case RegStatus:
		return b.status
	case RegCause:
		return b.cause
	case RegEntryHi:
		return b.entryHi
	default:
		return 0
	}
}

func (b *Backend) WritePrivReg(id uint32, v uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegStatus:
		b.status = v
	case RegCause:
		b.cause = v
	case RegEntryHi:
		b.entryHi = v
	}
}

// DisableInterrupts/EnableInterrupts model CP0 Status.IE.
func (b *Backend) DisableInterrupts() {
	b.mu.Lock()
	b.status &^= 1
	b.mu.Unlock()
}

func (b *Backend) EnableInterrupts() {
	b.mu.Lock()
	b.status |= 1
	b.mu.Unlock()
}

func (b *Backend) BarrierData()  { b.mu.Lock(); b.mu.Unlock() }
func (b *Backend) BarrierInstr() { b.mu.Lock(); b.mu.Unlock() }
