package memctrl

import "testing"

// fakeBus is a minimal byteAccessor over a sparse map, enough to exercise
// the register windows each driver reads and writes.
type fakeBus struct {
	regs map[uint64]byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{regs: make(map[uint64]byte)}
}

func (b *fakeBus) ReadByteFromAddress(addr uint64) byte {
	return b.regs[addr]
}

func (b *fakeBus) WriteByteToAddress(addr uint64, data byte) {
	b.regs[addr] = data
}

func TestDDRDetectAndTiming(t *testing.T) {
	bus := newFakeBus()
	bus.regs[0x1000+ddrTypeReg] = 0x04
	bus.regs[0x1000+ddrTimingReg] = 12

	d := NewDDR(bus, 0x1000)
	if got := d.DetectType(); got != DDR4 {
		t.Errorf("expected DDR4, got %v", got)
	}
	timing, err := d.ReadTiming()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timing.CASLatency != 12 {
		t.Errorf("expected CAS latency 12, got %d", timing.CASLatency)
	}
}

func TestDDRUnknownTypeFails(t *testing.T) {
	bus := newFakeBus()
	d := NewDDR(bus, 0x1000)
	if _, err := d.ReadTiming(); err == nil {
		t.Errorf("expected error for unrecognized DDR type")
	}
}

func TestDDRPowerModeRoundTrip(t *testing.T) {
	bus := newFakeBus()
	d := NewDDR(bus, 0x2000)
	if err := d.SetLowPowerMode(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bus.regs[0x2000+ddrPowerReg] != 0x01 {
		t.Errorf("expected self-refresh bit set")
	}
	if err := d.SetNormalMode(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bus.regs[0x2000+ddrPowerReg] != 0x00 {
		t.Errorf("expected power register cleared")
	}
}

func TestLPDDRDeepSleepVsSelfRefresh(t *testing.T) {
	bus := newFakeBus()
	bus.regs[0x3000+lpddrTypeReg] = 0x04
	l := NewLPDDR(bus, 0x3000)
	if got := l.DetectType(); got != LPDDR4X {
		t.Errorf("expected LPDDR4X, got %v", got)
	}
	if err := l.SetDeepSleepMode(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bus.regs[0x3000+lpddrPowerReg] != lpddrPowerDeepSleep {
		t.Errorf("expected deep sleep register value")
	}
	if err := l.SetLowPowerMode(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bus.regs[0x3000+lpddrPowerReg] != lpddrPowerSelfRef {
		t.Errorf("expected self-refresh to override deep sleep")
	}
}

func TestGDDRResetController(t *testing.T) {
	bus := newFakeBus()
	bus.regs[0x4000+gddrTypeReg] = 0x07
	g := NewGDDR(bus, 0x4000)
	if got := g.DetectType(); got != GDDR6 {
		t.Errorf("expected GDDR6, got %v", got)
	}
	if err := g.ResetController(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bus.regs[0x4000+gddrResetReg] != 0x01 {
		t.Errorf("expected reset register written")
	}
}

func TestGDDRMarkForAcceleratorIsANoop(t *testing.T) {
	bus := newFakeBus()
	g := NewGDDR(bus, 0x4000)
	if err := g.MarkForAccelerator(0x1000, 0x2000); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if len(bus.regs) != 0 {
		t.Errorf("expected no register writes from a logical marker, got %v", bus.regs)
	}
}

func TestHBMDetectAndBandwidth(t *testing.T) {
	bus := newFakeBus()
	bus.regs[0x5000+hbmTypeReg] = 0x04
	bus.regs[0x5000+hbmTimingReg] = 10
	h := NewHBM(bus, 0x5000)
	if got := h.DetectType(); got != HBM3 {
		t.Errorf("expected HBM3, got %v", got)
	}
	timing, err := h.ReadTiming()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timing.BandwidthGBs != 500 {
		t.Errorf("expected bandwidth 500, got %d", timing.BandwidthGBs)
	}
}

func TestHBMUnknownTypeFailsTiming(t *testing.T) {
	bus := newFakeBus()
	h := NewHBM(bus, 0x5000)
	if _, err := h.ReadTiming(); err == nil {
		t.Errorf("expected error for unrecognized HBM type")
	}
}
