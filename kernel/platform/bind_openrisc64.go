//go:build nkarch_openrisc64

package platform

import "github.com/nanokernel/nanokernel/kernel/arch/openrisc64"

func init() {
	Name = "openrisc64"
	BootConfig = openrisc64.DefaultConfig
	Manager = openrisc64.New()
}
