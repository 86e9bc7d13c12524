package mips64

const tlbEntries = 64
const PageSize = 4096

// tlbEntry models one software-managed TLB row: EntryHi (VPN2+ASID),
// EntryLo0/EntryLo1 (the even/odd physical-page halves), and PageMask.
type tlbEntry struct {
	entryHi  uint64
	entryLo0 uint64
	entryLo1 uint64
	pageMask uint64
	valid    bool
}

const (
	loValid uint64 = 1 << 1
	loDirty uint64 = 1 << 2
)

// tlbWriteIndexed installs an entry at a given TLB index, the stand-in for
// the `tlbwi` instruction.
func tlbWriteIndexed(b *Backend, index int, vaddr, paddr uint64, writable bool) {
	lo := (paddr >> 12 << 6) | loValid
	if writable {
		lo |= loDirty
	}
	b.tlb[index%tlbEntries] = tlbEntry{
		entryHi:  vaddr &^ 0xFFF,
		entryLo0: lo,
		pageMask: 0,
		valid:    true,
	}
}

// MapPage installs a vaddr->paddr mapping into TLB row index (taken modulo
// the TLB size, overwriting whatever the row held), the software-TLB
// analogue of a hardware page-table insert.
func MapPage(b *Backend, index int, vaddr, paddr uint64, writable bool) {
	tlbWriteIndexed(b, index, vaddr, paddr, writable)
}

// translate performs the software TLB lookup a real TLB-refill exception
// handler would do in microcode/firmware.
func (b *Backend) translate(vaddr uint64) (uint64, bool) {
	vpn := vaddr &^ 0xFFF
	for _, e := range b.tlb {
		if e.valid && e.entryHi == vpn {
			return (e.entryLo0 >> 6 << 12) | (vaddr & 0xFFF), true
		}
	}
	return 0, false
}

// InitMMU fills all 64 TLB rows with identity mappings spread across the
// first 16MiB: row i maps the single 4K page at i*256KiB. Each entry covers
// only that one page (PageMask is 0), so the rest of the 16MiB is not
// mapped.
func InitMMU(b *Backend) {
	const identityLimit = 16 * 1024 * 1024
	const stride = identityLimit / tlbEntries
	for i := 0; i < tlbEntries; i++ {
		addr := uint64(i * stride)
		MapPage(b, i, addr, addr, true)
	}
}
