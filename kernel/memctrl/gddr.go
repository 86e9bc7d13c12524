package memctrl

import "github.com/nanokernel/nanokernel/kernel/kernelerr"

// GDDR register window, grounded on the original's
// GM_GDDR_TYPE_REG/GM_TIMING_REG/GM_RESET_CTRL_REG.
const (
	gddrTypeReg  = 0xA000
	gddrTimeReg  = 0xA004
	gddrResetReg = 0xA008
)

// GDDRType is the closed set of GDDR generations this driver recognizes.
type GDDRType int

const (
	GDDRUnknown GDDRType = iota
	GDDR1
	GDDR2
	GDDR3
	GDDR4
	GDDR5
	GDDR5X
	GDDR6
	GDDR7
)

type GDDRTiming struct {
	Type           GDDRType
	BandwidthGBs   uint32
	ClockRateMHz   uint32
	TotalSizeBytes uint64
}

// GDDR drives an accelerator-attached GDDR memory controller.
type GDDR struct {
	bus  byteAccessor
	base uint64
}

func NewGDDR(bus byteAccessor, base uint64) *GDDR {
	return &GDDR{bus: bus, base: base}
}

func (g *GDDR) DetectType() GDDRType {
	switch g.bus.ReadByteFromAddress(g.base + gddrTypeReg) {
	case 0x1:
		return GDDR1
	case 0x2:
		return GDDR2
	case 0x3:
		return GDDR3
	case 0x4:
		return GDDR4
	case 0x5:
		return GDDR5
	case 0x6:
		return GDDR5X
	case 0x7:
		return GDDR6
	case 0x8:
		return GDDR7
	default:
		return GDDRUnknown
	}
}

func (g *GDDR) ReadTiming() (GDDRTiming, error) {
	t := g.DetectType()
	if t == GDDRUnknown {
		return GDDRTiming{}, kernelerr.NewPlatformError(0x02)
	}
	raw := g.bus.ReadByteFromAddress(g.base + gddrTimeReg)
	return GDDRTiming{
		Type:           t,
		BandwidthGBs:   uint32(raw) * 10,
		ClockRateMHz:   1000,
		TotalSizeBytes: 256 * 1024 * 1024,
	}, nil
}

// ResetController resets the GDDR bus/controller, the recovery path after
// a high-speed I/O error.
func (g *GDDR) ResetController() error {
	g.bus.WriteByteToAddress(g.base+gddrResetReg, 0x01)
	return nil
}

// MarkForAccelerator marks [address, address+size) as accelerator-visible.
// This is a logical marker only: actually changing page permissions
// requires an arch's MMU to re-walk and update the mapping, which is out
// of this driver's scope and left to the caller.
func (g *GDDR) MarkForAccelerator(address, size uint64) error {
	_ = address
	_ = size
	return nil
}
