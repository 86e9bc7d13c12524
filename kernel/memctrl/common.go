// Package memctrl implements the memory-controller driver family: DDR,
// LPDDR, GDDR, and HBM, each sharing the same detect/read-timing/power-mode
// shape and reading only through a platform.Contract, never touching
// kernel/memsim directly.
package memctrl

import (
	"github.com/nanokernel/nanokernel/kernel/platform"
)

// byteReader/byteWriter is the minimal slice of platform.Contract every
// driver in this package needs; it is satisfied by platform.Contract
// itself, and lets tests substitute a bare fake.
type byteReader interface {
	ReadByteFromAddress(addr uint64) byte
}

type byteWriter interface {
	WriteByteToAddress(addr uint64, data byte)
}

type byteAccessor interface {
	byteReader
	byteWriter
}

var _ byteAccessor = platform.Contract(nil)
