//go:build nkarch_loongarch64

package platform

import "github.com/nanokernel/nanokernel/kernel/arch/loongarch64"

func init() {
	Name = "loongarch64"
	BootConfig = loongarch64.DefaultConfig
	Manager = loongarch64.New()
}
