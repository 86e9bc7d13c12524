package amd64

import "github.com/nanokernel/nanokernel/kernel/memsim"

// PageSize is the base x86-64 page size.
const PageSize = 4096

// Page table entry flag bits.
const (
	FlagPresent  uint64 = 1 << 0
	FlagWritable uint64 = 1 << 1
	FlagUser     uint64 = 1 << 2
	FlagNoExec   uint64 = 1 << 63
)

const entryAddrMask uint64 = 0x000F_FFFF_FFFF_F000

// nextFreeTable hands out simulated physical pages for new page-table
// levels, a static-array bump allocator standing in for a real
// frame allocator.
var nextFreeTable uint64 = 0x0010_0000 // start tables at 1MiB

func allocPageTable(mem *memsim.Space) uint64 {
	addr := nextFreeTable
	nextFreeTable += PageSize
	for i := uint64(0); i < PageSize; i += 8 {
		mem.WriteDword(addr+i, 0)
	}
	return addr
}

func getIndices(vaddr uint64) (pml4, pdpt, pd, pt uint64) {
	pml4 = (vaddr >> 39) & 0x1FF
	pdpt = (vaddr >> 30) & 0x1FF
	pd = (vaddr >> 21) & 0x1FF
	pt = (vaddr >> 12) & 0x1FF
	return
}

// MapPage walks (and, when absent, creates) the 4-level PML4/PDPT/PD/PT
// chain rooted at pml4Addr to map vaddr to paddr with the given flags.
func MapPage(mem *memsim.Space, pml4Addr, vaddr, paddr uint64, flags uint64) {
	pml4i, pdpti, pdi, pti := getIndices(vaddr)

	walk := func(tableAddr uint64, index uint64, leaf bool, leafPaddr uint64) uint64 {
		entryAddr := tableAddr + index*8
		entry := mem.ReadDword(entryAddr)
		if leaf {
			mem.WriteDword(entryAddr, (leafPaddr&entryAddrMask)|flags|FlagPresent)
			return 0
		}
		if entry&FlagPresent == 0 {
			next := allocPageTable(mem)
			mem.WriteDword(entryAddr, (next&entryAddrMask)|FlagPresent|FlagWritable)
			return next
		}
		return entry & entryAddrMask
	}

	pdptAddr := walk(pml4Addr, pml4i, false, 0)
	pdAddr := walk(pdptAddr, pdpti, false, 0)
	ptAddr := walk(pdAddr, pdi, false, 0)
	walk(ptAddr, pti, true, paddr)
}

// InitMMU identity-maps the first 16MiB of simulated physical memory and
// installs the resulting PML4 into CR3, mirroring setup_initial_paging +
// enable_paging from the original amd64 backend.
func InitMMU(mem *memsim.Space) uint64 {
	pml4 := allocPageTable(mem)
	const identityLimit = 16 * 1024 * 1024
	for addr := uint64(0); addr < identityLimit; addr += PageSize {
		MapPage(mem, pml4, addr, addr, FlagWritable|FlagNoExec)
	}
	return pml4
}
