// Package sparcv9 models the SPARC V9 platform backend: simulated MMIO, a
// TSB-based MMU model, and OpenFirmware-trap-shaped power management.
package sparcv9

import (
	"context"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/platform"
)

const (
	RegPSTATE uint32 = iota
	RegTSBBase
	RegPIL // processor interrupt level
)

type Backend struct {
	mu     sync.Mutex
	mem    *memsim.Space
	mmio   [0x10000]byte
	pstate uint64
	tsb    uint64
	pil    uint64
}

var DefaultConfig = hwconfig.Config{
	ConsoleBase: 0x1FE0_0000, // simulated zs/su UART MMIO base
	RAMSize:     128 * 1024 * 1024,
	IntcBase:    0x1FE1_0000,
}

func New() platform.Contract { return &Backend{mem: memsim.NewSpace(DefaultConfig.RAMSize)} }

func (b *Backend) InitHardware() {
	b.DisableInterrupts()
	b.initUART(DefaultConfig.ConsoleBase)
	tsb := InitMMU(b.mem)
	b.WritePrivReg(RegTSBBase, tsb)
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
	case RegPSTATE:
		return b.pstate
	case RegTSBBase:
		return b.tsb
	case RegPIL:
		return b.pil
	default:
		return 0
	}
}

func (b *Backend) WritePrivReg(id uint32, v uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegPSTATE:
		b.pstate = v
	case RegTSBBase:
		b.tsb = v
	case RegPIL:
		b.pil = v
	}
}

// DisableInterrupts/EnableInterrupts model PIL (processor interrupt
// level): 15 masks everything but NMI, 0 masks nothing.
func (b *Backend) DisableInterrupts() {
	b.mu.Lock()
	b.pil = 15
	b.mu.Unlock()
}

func (b *Backend) EnableInterrupts() {
	b.mu.Lock()
	b.pil = 0
	b.mu.Unlock()
}

// BarrierData models "membar #Sync".
func (b *Backend) BarrierData() { b.mu.Lock(); b.mu.Unlock() }

// BarrierInstr models "flush" (required after writing executable pages).
func (b *Backend) BarrierInstr() { b.mu.Lock(); b.mu.Unlock() }
