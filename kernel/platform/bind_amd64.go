//go:build nkarch_amd64

package platform

import "github.com/nanokernel/nanokernel/kernel/arch/amd64"

func init() {
	Name = "amd64"
	BootConfig = amd64.DefaultConfig
	Manager = amd64.New()
}
