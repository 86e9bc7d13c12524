// Package arm64 models the AArch64 platform backend: simulated MMIO,
// a 4-level Sv48-like page-table walker with Table/Block/Page descriptor
// kinds, a GICv3-shaped interrupt controller, and a register-struct task
// context.
package arm64

import (
	"context"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/platform"
)

// Privileged register ids, the software-model stand-ins for the system
// registers the original accesses via mrs/msr.
const (
	RegSCTLR uint32 = iota
	RegTTBR0
	RegDAIF
	RegMPIDR
)

// Backend implements platform.Contract for AArch64.
type Backend struct {
	mu     sync.Mutex
	mem    *memsim.Space
	mmio   [0x10000]byte
	sctlr  uint64
	ttbr0  uint64
	daif   uint64
	mpidr  uint64
}

// DefaultConfig is arm64's compiled-in hardware configuration. ResolveConfig
// checks a device-tree blob header's magic and returns this value whether
// or not the magic matches; no field is read from the blob.
var DefaultConfig = hwconfig.Config{
	ConsoleBase: 0x0900_0000, // PL011 base, virt machine convention
	RAMSize:     128 * 1024 * 1024,
	IntcBase:    0x0800_0000, // GICv3 distributor base
}

func New() platform.Contract {
	return &Backend{mem: memsim.NewSpace(DefaultConfig.RAMSize)}
}

func (b *Backend) InitHardware() {
	b.DisableInterrupts()
	b.initPL011(DefaultConfig.ConsoleBase)
	ttbr0 := InitMMU(b.mem)
	b.WritePrivReg(RegTTBR0, ttbr0)
	b.EnableMMU()
	b.initGIC()
}

func (b *Backend) DebugPrint(data []byte) {
	for _, c := range data {
		b.pl011WriteByte(DefaultConfig.ConsoleBase, c)
	}
}

func (b *Backend) Halt(ctx context.Context) { <-ctx.Done() }

func (b *Backend) WriteByteToAddress(addr uint64, data byte) { b.mem.WriteByte(addr, data) }
func (b *Backend) ReadByteFromAddress(addr uint64) byte      { return b.mem.ReadByte(addr) }

func (b *Backend) ReadPrivReg(id uint32) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegSCTLR:
		return b.sctlr
	case RegTTBR0:
		return b.ttbr0
	case RegDAIF:
		return b.daif
	case RegMPIDR:
		return b.mpidr
	default:
		return 0
	}
}

func (b *Backend) WritePrivReg(id uint32, v uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegSCTLR:
		b.sctlr = v
	case RegTTBR0:
		b.ttbr0 = v
	case RegDAIF:
		b.daif = v
	case RegMPIDR:
		b.mpidr = v
	}
}

// DisableInterrupts/EnableInterrupts model "msr daifset/daifclr, #2" (IRQ
// mask bit) against the simulated DAIF register.
func (b *Backend) DisableInterrupts() {
	b.mu.Lock()
	b.daif |= 1 << 7
	b.mu.Unlock()
}

func (b *Backend) EnableInterrupts() {
	b.mu.Lock()
	b.daif &^= 1 << 7
	b.mu.Unlock()
}

// BarrierData models "dsb sy".
func (b *Backend) BarrierData() { b.mu.Lock(); b.mu.Unlock() }

// BarrierInstr models "isb".
func (b *Backend) BarrierInstr() { b.mu.Lock(); b.mu.Unlock() }
