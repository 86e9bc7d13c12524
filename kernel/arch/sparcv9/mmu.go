package sparcv9

import "github.com/nanokernel/nanokernel/kernel/memsim"

const PageSize = 8192 // SPARC V9's minimum MMU page size

// tsbEntry models one Translation Storage Buffer row: tag (virtual page
// number) and data (physical page number plus a valid bit).
type tsbEntry struct {
	tag   uint64
	data  uint64
	valid bool
}

const tsbEntries = 2048 // 2048 x 8 KiB pages: the 16MiB identity map fits without collisions
const tsbEntrySize = 16 // bytes: 8-byte tag + 8-byte data

func tsbIndex(vaddr uint64) uint64 {
	return (vaddr / PageSize) % tsbEntries
}

// MapPage installs a direct-mapped TSB entry for vaddr -> paddr at the
// hashed index, overwriting whatever collided there, the same direct-map
// TSB model the original's mmu.rs documents for a bare-metal build with no
// software-managed overflow chain.
func MapPage(mem *memsim.Space, tsbBase, vaddr, paddr uint64, writable bool) {
	idx := tsbIndex(vaddr)
	entryAddr := tsbBase + idx*tsbEntrySize
	tag := vaddr &^ (PageSize - 1)
	data := (paddr &^ (PageSize - 1)) | 1 // valid bit
	if writable {
		data |= 1 << 1
	}
	mem.WriteDword(entryAddr, tag)
	mem.WriteDword(entryAddr+8, data)
}

var nextFreeTSB uint64 = 0x0060_0000

// InitMMU allocates a fresh TSB and identity-maps the first 16MiB into it.
func InitMMU(mem *memsim.Space) uint64 {
	tsbBase := nextFreeTSB
	nextFreeTSB += tsbEntries * tsbEntrySize
	for i := uint64(0); i < tsbEntries*tsbEntrySize; i += 8 {
		mem.WriteDword(tsbBase+i, 0)
	}
	const identityLimit = 16 * 1024 * 1024
	for addr := uint64(0); addr < identityLimit; addr += PageSize {
		MapPage(mem, tsbBase, addr, addr, true)
	}
	return tsbBase
}
