package sparcv9

import "context"

// OpenFirmware client-interface trap service names the original's
// power.rs invokes via %g1=0x7d / ta 0x20 ("syscall").
const (
	ofServicePowerOff = "exit"     // informal: OBP maps generic exit to power-off on supporting platforms
	ofServiceReboot   = "boot"
)

// ofCall models a trap into OpenFirmware; the simulated backend just
// records which service was requested.
func (b *Backend) ofCall(service string) {
	var code uint64
	if service == ofServiceReboot {
		code = 1
	}
	b.WritePrivReg(RegPIL, code)
}

func (b *Backend) Reboot(ctx context.Context) {
	b.ofCall(ofServiceReboot)
	b.Halt(ctx)
}

func (b *Backend) Shutdown(ctx context.Context) {
	b.ofCall(ofServicePowerOff)
	b.Halt(ctx)
}
