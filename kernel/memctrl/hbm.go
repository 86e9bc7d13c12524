package memctrl

import "github.com/nanokernel/nanokernel/kernel/kernelerr"

// HBM register window. HBM stacks expose a per-channel status layout in
// real hardware; this driver models the aggregate stack as a single
// logical channel, the same simplification the DDR/GDDR drivers make.
const (
	hbmTypeReg   = 0xC000
	hbmTimingReg = 0xC004
	hbmResetReg  = 0xC008
)

// HBMType is the closed set of HBM generations this driver recognizes.
type HBMType int

const (
	HBMUnknown HBMType = iota
	HBM1
	HBM2
	HBM2E
	HBM3
	HBM3E
)

type HBMTiming struct {
	Type             HBMType
	BandwidthGBs     uint32
	StackHeightLayers uint8
	TotalSizeBytes   uint64
}

// HBM drives a High Bandwidth Memory stack's controller.
type HBM struct {
	bus  byteAccessor
	base uint64
}

func NewHBM(bus byteAccessor, base uint64) *HBM {
	return &HBM{bus: bus, base: base}
}

func (h *HBM) DetectType() HBMType {
	switch h.bus.ReadByteFromAddress(h.base + hbmTypeReg) {
	case 0x1:
		return HBM1
	case 0x2:
		return HBM2
	case 0x3:
		return HBM2E
	case 0x4:
		return HBM3
	case 0x5:
		return HBM3E
	default:
		return HBMUnknown
	}
}

func (h *HBM) ReadTiming() (HBMTiming, error) {
	t := h.DetectType()
	if t == HBMUnknown {
		return HBMTiming{}, kernelerr.NewPlatformError(0x04)
	}
	raw := h.bus.ReadByteFromAddress(h.base + hbmTimingReg)
	return HBMTiming{
		Type:              t,
		BandwidthGBs:      uint32(raw) * 50,
		StackHeightLayers: 8,
		TotalSizeBytes:    4 * 1024 * 1024 * 1024,
	}, nil
}

// ResetController resets the HBM PHY/controller.
func (h *HBM) ResetController() error {
	h.bus.WriteByteToAddress(h.base+hbmResetReg, 0x01)
	return nil
}

// MarkForAccelerator mirrors GDDR.MarkForAccelerator: a logical marker,
// since changing the actual mapping belongs to the arch MMU.
func (h *HBM) MarkForAccelerator(address, size uint64) error {
	_ = address
	_ = size
	return nil
}
