package arm64

import "context"

// PSCI function identifiers issued via a simulated SMC call, matching the
// original's psci_call sequencing.
const (
	psciSystemOff   = 0x84000008
	psciSystemReset = 0x84000009
)

// smcCall models an SMC #0 trap into EL3 firmware; the simulated backend
// just records which function was requested.
func (b *Backend) smcCall(function uint64) {
	b.WritePrivReg(RegMPIDR, function)
}

func (b *Backend) Reboot(ctx context.Context) {
	b.smcCall(psciSystemReset)
	b.Halt(ctx)
}

func (b *Backend) Shutdown(ctx context.Context) {
	b.smcCall(psciSystemOff)
	b.Halt(ctx)
}
