// Package platform defines the hardware contract every architecture
// backend implements, and selects the active backend at build time via
// custom build tags (nkarch_amd64, nkarch_arm64, ...), since the set of
// architectures this kernel targets does not line up one-to-one with real
// Go GOARCH values (sparcv9 and openrisc64 have no Go compiler backend at
// all).
package platform

import (
	"context"

	"github.com/nanokernel/nanokernel/kernel/hwconfig"
)

// Contract is the set of operations every simulated architecture backend
// must provide. It is the software-model analogue of a bare-metal
// platform abstraction trait: where the original calls into inline
// assembly, this calls into a per-arch simulated register file and
// address space.
type Contract interface {
	// InitHardware performs one-time startup: CPU core init, base clocks,
	// and any simulated register defaults. Called before any other method,
	// from a single core: once at boot, and again by session.Reboot.
	InitHardware()

	// DebugPrint writes b to the boot console / debug port.
	DebugPrint(b []byte)

	// Halt parks the core in its idle/low-power loop until ctx is
	// cancelled. Real hardware never returns from this; the simulated
	// model uses a context so tests can observe and terminate it.
	Halt(ctx context.Context)

	// WriteByteToAddress and ReadByteFromAddress perform a simulated
	// MMIO or port access at addr.
	WriteByteToAddress(addr uint64, data byte)
	ReadByteFromAddress(addr uint64) byte

	// ReadPrivReg and WritePrivReg access a simulated privileged register
	// identified by a per-arch id constant (see each arch package's
	// RegXxx constants).
	ReadPrivReg(id uint32) uint64
	WritePrivReg(id uint32, v uint64)

	// DisableInterrupts and EnableInterrupts mask/unmask the core's
	// interrupt line.
	DisableInterrupts()
	EnableInterrupts()

	// BarrierData and BarrierInstr are full data and instruction memory
	// barriers.
	BarrierData()
	BarrierInstr()
}

// Manager is the active architecture backend, bound at init time by
// exactly one of the nkarch_* build-tagged files in this package.
var Manager Contract

// Name is the compiled-in architecture name, set by the same bind file
// that assigns Manager. Used to validate a requested --arch flag against
// the binary actually built.
var Name string

// BootConfig is the compiled-in architecture's default hardware
// configuration, set by the same bind file that assigns Manager. A boot
// override file layers onto a copy of this value.
var BootConfig hwconfig.Config

// New returns the architecture backend selected at build time via the
// nkarch_<name> build tag. Each tagged file in this package supplies its
// own init() that assigns Manager; unsupported.go is the fallback when no
// tag is set.
func New() Contract {
	return Manager
}
