package arm64

import "github.com/nanokernel/nanokernel/kernel/memsim"

const PageSize = 4096

// Descriptor kind bits (bit 0 valid, bit 1 table-vs-block at levels 0-2,
// always "page" at level 3).
const (
	DescValid uint64 = 1 << 0
	DescTable uint64 = 1 << 1
	DescAF    uint64 = 1 << 10 // access flag, must be set or every access faults
)

const entryAddrMask uint64 = 0x0000_FFFF_FFFF_F000

var nextFreeTable uint64 = 0x0020_0000

func allocTable(mem *memsim.Space) uint64 {
	addr := nextFreeTable
	nextFreeTable += PageSize
	for i := uint64(0); i < PageSize; i += 8 {
		mem.WriteDword(addr+i, 0)
	}
	return addr
}

func tableIndices(vaddr uint64) (l0, l1, l2, l3 uint64) {
	l0 = (vaddr >> 39) & 0x1FF
	l1 = (vaddr >> 30) & 0x1FF
	l2 = (vaddr >> 21) & 0x1FF
	l3 = (vaddr >> 12) & 0x1FF
	return
}

// MapPage walks the 4-level translation table rooted at ttbr0, creating
// table descriptors as needed, and installs a page descriptor for vaddr
// mapping to paddr with the given attribute bits.
func MapPage(mem *memsim.Space, ttbr0, vaddr, paddr, attrs uint64) {
	l0, l1, l2, l3 := tableIndices(vaddr)

	step := func(tableAddr, index uint64) uint64 {
		entryAddr := tableAddr + index*8
		entry := mem.ReadDword(entryAddr)
		if entry&DescValid == 0 {
			next := allocTable(mem)
			mem.WriteDword(entryAddr, (next&entryAddrMask)|DescValid|DescTable)
			return next
		}
		return entry & entryAddrMask
	}

	l1Table := step(ttbr0, l0)
	l2Table := step(l1Table, l1)
	l3Table := step(l2Table, l2)
	entryAddr := l3Table + l3*8
	mem.WriteDword(entryAddr, (paddr&entryAddrMask)|attrs|DescValid|DescTable|DescAF)
}

// InitMMU identity-maps the first 16MiB of simulated physical memory and
// returns the root table base for TTBR0_EL1.
func InitMMU(mem *memsim.Space) uint64 {
	root := allocTable(mem)
	const identityLimit = 16 * 1024 * 1024
	for addr := uint64(0); addr < identityLimit; addr += PageSize {
		MapPage(mem, root, addr, addr, 0)
	}
	return root
}
