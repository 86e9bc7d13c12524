// Package hwconfig defines HardwareConfig, the small set of board-level
// addresses and sizes every architecture backend needs at boot, along with
// the device-tree-blob magic-number check used to validate a config blob
// before trusting it.
package hwconfig

import "github.com/nanokernel/nanokernel/kernel/kernelerr"

// DtbMagic is the expected big-endian magic number at the start of a
// device-tree blob. Parsing the blob's contents is out of scope; only this
// header check is performed.
const DtbMagic uint32 = 0xD00DFEED

// Config is the resolved hardware configuration for a boot: console base
// address, RAM size, and interrupt controller base, each architecture's
// compiled-in default unless overridden by a bootconfig file.
type Config struct {
	ConsoleBase uint64
	RAMSize     uint64
	IntcBase    uint64
}

// CheckMagic validates a 4-byte big-endian header against DtbMagic.
func CheckMagic(header [4]byte) error {
	got := uint32(header[0])<<24 | uint32(header[1])<<16 | uint32(header[2])<<8 | uint32(header[3])
	if got != DtbMagic {
		return kernelerr.ErrDtbNotFound
	}
	return nil
}
