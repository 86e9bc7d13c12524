package loongarch64

import "github.com/nanokernel/nanokernel/kernel/memsim"

const PageSize = 4096

const (
	PTEValid uint64 = 1 << 0
	PTEDirty uint64 = 1 << 1
	PTEWrite uint64 = 1 << 2
	PTENoExec uint64 = 1 << 62
)

const pfnMask uint64 = 0x0000_FFFF_FFFF_F000

var nextFreeTable uint64 = 0x0040_0000

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

// MapPage walks LoongArch's 4-level Radix-style directory (PGD/PUD/PMD/PTE)
// rooted at pgdAddr, creating intermediate tables as needed.
func MapPage(mem *memsim.Space, pgdAddr, vaddr, paddr, flags uint64) {
	d3, d2, d1, d0 := dirIndex(vaddr, 3), dirIndex(vaddr, 2), dirIndex(vaddr, 1), dirIndex(vaddr, 0)

	step := func(tableAddr, index uint64) uint64 {
		entryAddr := tableAddr + index*8
		entry := mem.ReadDword(entryAddr)
		if entry&PTEValid == 0 {
			next := allocTable(mem)
			mem.WriteDword(entryAddr, (next&pfnMask)|PTEValid)
			return next
		}
		return entry & pfnMask
	}

	pud := step(pgdAddr, d3)
	pmd := step(pud, d2)
	pt := step(pmd, d1)
	leaf := pt + d0*8
	mem.WriteDword(leaf, (paddr&pfnMask)|flags|PTEValid)
}

func InitMMU(mem *memsim.Space) uint64 {
	root := allocTable(mem)
	const identityLimit = 16 * 1024 * 1024
	for addr := uint64(0); addr < identityLimit; addr += PageSize {
		MapPage(mem, root, addr, addr, PTEWrite)
	}
	return root
}
