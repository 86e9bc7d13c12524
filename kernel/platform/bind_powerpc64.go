//go:build nkarch_powerpc64

package platform

import "github.com/nanokernel/nanokernel/kernel/arch/powerpc64"

func init() {
	Name = "powerpc64"
	BootConfig = powerpc64.DefaultConfig
	Manager = powerpc64.New()
}
