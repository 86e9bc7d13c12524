package openrisc64

const tlbEntries = 64
const PageSize = 8192 // OpenRISC's conventional MMU page size

type tlbEntry struct {
	vaddr uint64
	paddr uint64
	valid bool
	write bool
}

// MapPage installs vaddr->paddr into the data TLB (and, for executable
// mappings, the instruction TLB), OpenRISC's two-TLB analogue of a single
// unified page table.
func MapPage(b *Backend, index int, vaddr, paddr uint64, writable, executable bool) {
	e := tlbEntry{vaddr: vaddr &^ (PageSize - 1), paddr: paddr &^ (PageSize - 1), valid: true, write: writable}
	b.dtlb[index%tlbEntries] = e
	if executable {
		b.itlb[index%tlbEntries] = e
	}
}

func (b *Backend) translateData(vaddr uint64) (uint64, bool) {
	vpn := vaddr &^ (PageSize - 1)
	for _, e := range b.dtlb {
		if e.valid && e.vaddr == vpn {
			return e.paddr | (vaddr & (PageSize - 1)), true
		}
	}
	return 0, false
}

func InitMMU(b *Backend) {
	const identityLimit = 16 * 1024 * 1024
	const stride = identityLimit / tlbEntries
	for i := 0; i < tlbEntries; i++ {
		addr := uint64(i * stride)
		MapPage(b, i, addr, addr, true, true)
	}
}
