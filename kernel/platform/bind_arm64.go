//go:build nkarch_arm64

package platform

import "github.com/nanokernel/nanokernel/kernel/arch/arm64"

func init() {
	Name = "arm64"
	BootConfig = arm64.DefaultConfig
	Manager = arm64.New()
}
