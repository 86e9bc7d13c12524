package powerpc64

import "github.com/nanokernel/nanokernel/kernel/memsim"

const PageSize = 4096

const (
	DirValid uint64 = 1 << 63
	PTEWrite uint64 = 1 << 1
	PTEExec  uint64 = 1 << 2
)

const rpnMask uint64 = 0x0000_FFFF_FFFF_F000

var nextFreeTable uint64 = 0x0050_0000

func allocTable(mem *memsim.Space) uint64 {
	addr := nextFreeTable
	nextFreeTable += PageSize
	for i := uint64(0); i < PageSize; i += 8 {
		mem.WriteDword(addr+i, 0)
	}
	return addr
}

func dirIndex(vaddr uint64, level int) uint64 {
	return (vaddr >> (12 + 9*uint(level))) & 0x1FF
}

// MapPage walks the Radix tree (equivalent to the PML4-style 4-level
// directory OpenPOWER's Radix MMU uses) rooted at partitionTableBase,
// creating directories as needed, then installs a leaf PTE.
func MapPage(mem *memsim.Space, partitionTableBase, vaddr, paddr, flags uint64) {
	d3, d2, d1, d0 := dirIndex(vaddr, 3), dirIndex(vaddr, 2), dirIndex(vaddr, 1), dirIndex(vaddr, 0)

	step := func(tableAddr, index uint64) uint64 {
		entryAddr := tableAddr + index*8
		entry := mem.ReadDword(entryAddr)
		if entry&DirValid == 0 {
			next := allocTable(mem)
			mem.WriteDword(entryAddr, (next&rpnMask)|DirValid)
			return next
		}
		return entry & rpnMask
	}

	l2 := step(partitionTableBase, d3)
	l1 := step(l2, d2)
	l0 := step(l1, d1)
	leaf := l0 + d0*8
	mem.WriteDword(leaf, (paddr&rpnMask)|flags|DirValid)
}

func InitMMU(mem *memsim.Space) uint64 {
	root := allocTable(mem)
	const identityLimit = 16 * 1024 * 1024
	for addr := uint64(0); addr < identityLimit; addr += PageSize {
		MapPage(mem, root, addr, addr, PTEWrite|PTEExec)
	}
	return root
}
