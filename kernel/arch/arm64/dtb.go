package arm64

import "github.com/nanokernel/nanokernel/kernel/hwconfig"

// ResolveConfig validates a device-tree-blob header and returns
// DefaultConfig unchanged; parsing the blob's body is out of scope, only
// the magic-number gate the original checks before trusting anything it
// contains.
func ResolveConfig(dtbHeader [4]byte) (hwconfig.Config, error) {
	if err := hwconfig.CheckMagic(dtbHeader); err != nil {
		return DefaultConfig, err
	}
	return DefaultConfig, nil
}
