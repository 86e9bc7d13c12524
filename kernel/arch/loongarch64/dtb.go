package loongarch64

import "github.com/nanokernel/nanokernel/kernel/hwconfig"

func ResolveConfig(dtbHeader [4]byte) (hwconfig.Config, error) {
	if err := hwconfig.CheckMagic(dtbHeader); err != nil {
		return DefaultConfig, err
	}
	return DefaultConfig, nil
}
