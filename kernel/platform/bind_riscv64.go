//go:build nkarch_riscv64

package platform

import "github.com/nanokernel/nanokernel/kernel/arch/riscv64"

func init() {
	Name = "riscv64"
	BootConfig = riscv64.DefaultConfig
	Manager = riscv64.New()
}
