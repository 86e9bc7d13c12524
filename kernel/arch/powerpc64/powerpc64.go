// Package powerpc64 models the PowerPC-64 platform backend: simulated
// MMIO, a Radix-tree page-table walker, an MPIC-shaped interrupt
// controller, and RTAS-call-shaped power management.
package powerpc64

import (
	"context"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/platform"
)

const (
	RegMSR uint32 = iota // machine state register
	RegPTCR               // partition table base
	RegSRR0
)

type Backend struct {
	mu   sync.Mutex
	mem  *memsim.Space
	mmio [0x10000]byte
	msr  uint64
	ptcr uint64
	srr0 uint64
}

var DefaultConfig = hwconfig.Config{
	ConsoleBase: 0x0100_0000, // mmio-mapped 16550, OpenPOWER convention
	RAMSize:     128 * 1024 * 1024,
	IntcBase:    0x0300_0000, // MPIC base
}

func New() platform.Contract { return &Backend{mem: memsim.NewSpace(DefaultConfig.RAMSize)} }

func (b *Backend) InitHardware() {
	b.DisableInterrupts()
	b.initUART(DefaultConfig.ConsoleBase)
	ptcr := InitMMU(b.mem)
	b.WritePrivReg(RegPTCR, ptcr)
	b.initMPIC()
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
	case RegMSR:
		return b.msr
	case RegPTCR:
		return b.ptcr
	case RegSRR0:
		return b.srr0
	default:
		return 0
	}
}

func (b *Backend) WritePrivReg(id uint32, v uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegMSR:
		b.msr = v
	case RegPTCR:
		b.ptcr = v
	case RegSRR0:
		b.srr0 = v
	}
}

// DisableInterrupts/EnableInterrupts model MSR.EE.
func (b *Backend) DisableInterrupts() {
	b.mu.Lock()
	b.msr &^= 1 << 15
	b.mu.Unlock()
}

func (b *Backend) EnableInterrupts() {
	b.mu.Lock()
	b.msr |= 1 << 15
	b.mu.Unlock()
}

// BarrierData models "sync" (heavyweight sync).
func (b *Backend) BarrierData() { b.mu.Lock(); b.mu.Unlock() }

// BarrierInstr models "isync".
func (b *Backend) BarrierInstr() { b.mu.Lock(); b.mu.Unlock() }
