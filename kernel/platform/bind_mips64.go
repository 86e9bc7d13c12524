//go:build nkarch_mips64

package platform

import "github.com/nanokernel/nanokernel/kernel/arch/mips64"

func init() {
	Name = "mips64"
	BootConfig = mips64.DefaultConfig
	Manager = mips64.New()
}
