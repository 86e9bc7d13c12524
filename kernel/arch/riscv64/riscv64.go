// Package riscv64 models the RV64 platform backend: simulated MMIO, an
// Sv39 3-level page-table walker, a PLIC+CLINT interrupt model, and SBI-
// call-shaped power management.
package riscv64

import (
	"context"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/platform"
)

// Privileged CSR ids, the software-model stand-ins for csrr/csrw targets.
const (
	RegSSTATUS uint32 = iota
	RegSATP
	RegSIE
	RegSIP
)

type Backend struct {
	mu    sync.Mutex
	mem   *memsim.Space
	mmio  [0x10000]byte
	sstatus uint64
	satp    uint64
	sie     uint64
	sip     uint64
}

var DefaultConfig = hwconfig.Config{
	ConsoleBase: 0x1000_0000, // ns16550a, virt machine convention
	RAMSize:     128 * 1024 * 1024,
	IntcBase:    0x0c00_0000, // PLIC base
}

func New() platform.Contract { return &Backend{mem: memsim.NewSpace(DefaultConfig.RAMSize)} }

func (b *Backend) InitHardware() {
	b.DisableInterrupts()
	b.initUART(DefaultConfig.ConsoleBase)
	satp := InitMMU(b.mem)
	b.WritePrivReg(RegSATP, satp)
	b.EnableSUM()
	b.initPLIC()
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
	case RegSSTATUS:
		return b.sstatus
	case RegSATP:
		return b.satp
	case RegSIE:
		return b.sie
	case RegSIP:
		return b.sip
	default:
		return 0
	}
}

func (b *Backend) WritePrivReg(id uint32, v uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegSSTATUS:
		b.sstatus = v
	case RegSATP:
		b.satp = v
	case RegSIE:
		b.sie = v
	case RegSIP:
		b.sip = v
	}
}

// DisableInterrupts/EnableInterrupts model clearing/setting SSTATUS.SIE.
func (b *Backend) DisableInterrupts() {
	b.mu.Lock()
	b.sstatus &^= 1 << 1
	b.mu.Unlock()
}

func (b *Backend) EnableInterrupts() {
	b.mu.Lock()
	b.sstatus |= 1 << 1
	b.mu.Unlock()
}

// BarrierData models "fence rw,rw".
func (b *Backend) BarrierData() { b.mu.Lock(); b.mu.Unlock() }

// BarrierInstr models "fence.i".
func (b *Backend) BarrierInstr() { b.mu.Lock(); b.mu.Unlock() }
