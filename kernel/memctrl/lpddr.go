package memctrl

import "github.com/nanokernel/nanokernel/kernel/kernelerr"

// LPDDR shares DDR's register layout at a different conventional base and
// adds a deep power-down mode beyond plain self-refresh, the distinction
// every LPDDR generation makes for battery-powered platforms.
const (
	lpddrTypeReg   = 0xB000
	lpddrTimingReg = 0xB004
	lpddrPowerReg  = 0xB008
)

// LPDDRType is the closed set of low-power DDR generations this driver
// recognizes.
type LPDDRType int

const (
	LPDDRUnknown LPDDRType = iota
	LPDDR2
	LPDDR3
	LPDDR4
	LPDDR4X
	LPDDR5
	LPDDR5X
)

type LPDDRTiming struct {
	Type           LPDDRType
	CASLatency     uint8
	RefreshRateMs  uint32
	TotalSizeBytes uint64
}

// LPDDR power-control register values: 0 normal, 1 self-refresh, 2 deep
// power-down.
const (
	lpddrPowerNormal    = 0x00
	lpddrPowerSelfRef   = 0x01
	lpddrPowerDeepSleep = 0x02
)

type LPDDR struct {
	bus  byteAccessor
	base uint64
}

func NewLPDDR(bus byteAccessor, base uint64) *LPDDR {
	return &LPDDR{bus: bus, base: base}
}

func (l *LPDDR) DetectType() LPDDRType {
	switch l.bus.ReadByteFromAddress(l.base + lpddrTypeReg) {
	case 0x01:
		return LPDDR2
	case 0x02:
		return LPDDR3
	case 0x03:
		return LPDDR4
	case 0x04:
		return LPDDR4X
	case 0x05:
		return LPDDR5
	case 0x06:
		return LPDDR5X
	default:
		return LPDDRUnknown
	}
}

func (l *LPDDR) ReadTiming() (LPDDRTiming, error) {
	t := l.DetectType()
	if t == LPDDRUnknown {
		return LPDDRTiming{}, kernelerr.NewPlatformError(0x03)
	}
	raw := l.bus.ReadByteFromAddress(l.base + lpddrTimingReg)
	return LPDDRTiming{
		Type:           t,
		CASLatency:     raw,
		RefreshRateMs:  32,
		TotalSizeBytes: 256 * 1024 * 1024,
	}, nil
}

func (l *LPDDR) SetLowPowerMode() error {
	l.bus.WriteByteToAddress(l.base+lpddrPowerReg, lpddrPowerSelfRef)
	return nil
}

// SetDeepSleepMode commands LPDDR's lowest-power retention state, one step
// below plain self-refresh.
func (l *LPDDR) SetDeepSleepMode() error {
	l.bus.WriteByteToAddress(l.base+lpddrPowerReg, lpddrPowerDeepSleep)
	return nil
}

func (l *LPDDR) SetNormalMode() error {
	l.bus.WriteByteToAddress(l.base+lpddrPowerReg, lpddrPowerNormal)
	return nil
}
