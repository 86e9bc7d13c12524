package powerpc64

import "context"

// RTAS token values for system shutdown/reboot, matching the original's
// rtas_call sequencing.
const (
	rtasTokenPowerOff = 0x1B
	rtasTokenReboot   = 0x1D
)

// rtasCall models an RTAS firmware call; the simulated backend just
// records which token was requested.
func (b *Backend) rtasCall(token uint64) {
	b.WritePrivReg(RegSRR0, token)
}

func (b *Backend) Reboot(ctx context.Context) {
	b.rtasCall(rtasTokenReboot)
	b.Halt(ctx)
}

func (b *Backend) Shutdown(ctx context.Context) {
	b.rtasCall(rtasTokenPowerOff)
	b.Halt(ctx)
}
