package memctrl

import "github.com/nanokernel/nanokernel/kernel/kernelerr"

// DDR register window (MMIO offsets from the driver's configured base),
// grounded on the original's MC_DDR_TYPE_REG/MC_TIMING_REG/MC_POWER_CTRL_REG.
const (
	ddrTypeReg   = 0x9000
	ddrTimingReg = 0x9004
	ddrPowerReg  = 0x9008
)

// DDRType is the closed set of DDR generations this driver recognizes.
type DDRType int

const (
	DDRUnknown DDRType = iota
	DDR1
	DDR2
	DDR3
	DDR4
	DDR5
	DDR6
)

// DDRTiming is the static timing/capacity parameters read back from the
// controller.
type DDRTiming struct {
	Type           DDRType
	CASLatency     uint8
	RefreshRateMs  uint32
	TotalSizeBytes uint64
}

// DDR drives a DDR-family memory controller over a platform.Contract.
type DDR struct {
	bus  byteAccessor
	base uint64
}

// NewDDR binds a DDR driver to the controller's MMIO window base.
func NewDDR(bus byteAccessor, base uint64) *DDR {
	return &DDR{bus: bus, base: base}
}

// DetectType reads the controller's type register.
func (d *DDR) DetectType() DDRType {
	switch d.bus.ReadByteFromAddress(d.base + ddrTypeReg) {
	case 0x01:
		return DDR1
	case 0x02:
		return DDR2
	case 0x03:
		return DDR3
	case 0x04:
		return DDR4
	case 0x05:
		return DDR5
	case 0x06:
		return DDR6
	default:
		return DDRUnknown
	}
}

// ReadTiming reads the controller's timing parameters, failing with a
// platform-specific code if the detected type is unrecognized.
func (d *DDR) ReadTiming() (DDRTiming, error) {
	t := d.DetectType()
	if t == DDRUnknown {
		return DDRTiming{}, kernelerr.NewPlatformError(0x01)
	}
	raw := d.bus.ReadByteFromAddress(d.base + ddrTimingReg)
	return DDRTiming{
		Type:           t,
		CASLatency:     raw,
		RefreshRateMs:  64,
		TotalSizeBytes: 512 * 1024 * 1024,
	}, nil
}

// SetLowPowerMode commands self-refresh mode.
func (d *DDR) SetLowPowerMode() error {
	d.bus.WriteByteToAddress(d.base+ddrPowerReg, 0x01)
	return nil
}

// SetNormalMode returns the controller to normal operation.
func (d *DDR) SetNormalMode() error {
	d.bus.WriteByteToAddress(d.base+ddrPowerReg, 0x00)
	return nil
}
