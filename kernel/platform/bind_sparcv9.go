//go:build nkarch_sparcv9

package platform

import "github.com/nanokernel/nanokernel/kernel/arch/sparcv9"

func init() {
	Name = "sparcv9"
	BootConfig = sparcv9.DefaultConfig
	Manager = sparcv9.New()
}
