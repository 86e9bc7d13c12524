// Package loongarch64 models the LoongArch-64 platform backend: simulated
// MMIO, a 4-level Radix-style page-table walker, an MMIO-mapped interrupt
// controller, and MMIO-magic-sequence power management.
package loongarch64

import (
	"context"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/platform"
)

const (
	RegCRMD uint32 = iota // current mode
	RegPGDL               // page global directory, low half
	RegECFG               // exception config
)

type Backend struct {
	mu   sync.Mutex
	mem  *memsim.Space
	mmio [0x10000]byte
	crmd uint64
	pgdl uint64
	ecfg uint64
}

var DefaultConfig = hwconfig.Config{
	ConsoleBase: 0x1FE0_01E0, // 2K1000-style UART base, per LoongArch reference board
	RAMSize:     128 * 1024 * 1024,
	IntcBase:    0x1FE0_1400,
}

func New() platform.Contract { return &Backend{mem: memsim.NewSpace(DefaultConfig.RAMSize)} }

func (b *Backend) InitHardware() {
	b.DisableInterrupts()
	b.initUART(DefaultConfig.ConsoleBase)
	pgdl := InitMMU(b.mem)
	b.WritePrivReg(RegPGDL, pgdl)
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
	case RegCRMD:
		return b.crmd
	case RegPGDL:
		return b.pgdl
	case RegECFG:
		return b.ecfg
	default:
		return 0
	}
}

func (b *Backend) WritePrivReg(id uint32, v uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch id {
	case RegCRMD:
		b.crmd = v
	case RegPGDL:
		b.pgdl = v
	case RegECFG:
		b.ecfg = v
	}
}

func (b *Backend) DisableInterrupts() {
	b.mu.Lock()
	b.crmd &^= 1 << 2
	b.mu.Unlock()
}

func (b *Backend) EnableInterrupts() {
	b.mu.Lock()
	b.crmd |= 1 << 2
	b.mu.Unlock()
}

func (b *Backend) BarrierData()  { b.mu.Lock(); b.mu.Unlock() }
func (b *Backend) BarrierInstr() { b.mu.Lock(); b.mu.Unlock() }
