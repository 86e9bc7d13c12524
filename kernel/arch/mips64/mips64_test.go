package mips64

import (
	"context"
	"testing"
	"time"

	"github.com/nanokernel/nanokernel/kernel/trap"
)

func TestInitHardwareInstallsTLBAndMasksInterrupts(t *testing.T) {
	b := New().(*Backend)
	b.InitHardware()
	if b.ReadPrivReg(RegStatus)&1 != 0 {
		t.Errorf("expected Status.IE cleared after InitHardware")
	}
	if !b.tlb[0].valid {
		t.Errorf("expected TLB entry 0 populated by InitMMU")
	}
}

func TestInterruptMaskToggle(t *testing.T) {
	b := New().(*Backend)
	b.EnableInterrupts()
	if b.ReadPrivReg(RegStatus)&1 == 0 {
		t.Errorf("expected Status.IE set")
	}
	b.DisableInterrupts()
	if b.ReadPrivReg(RegStatus)&1 != 0 {
		t.Errorf("expected Status.IE cleared")
	}
}

func TestPrivRegReadWrite(t *testing.T) {
	b := New().(*Backend)
	b.WritePrivReg(RegEntryHi, 0x9000)
	if got := b.ReadPrivReg(RegEntryHi); got != 0x9000 {
		t.Errorf("expected 0x9000, got 0x%x", got)
	}
	if got := b.ReadPrivReg(999); got != 0 {
		t.Errorf("unknown reg id should read back zero, got %d", got)
	}
}

func TestMapPageInstallsTLBEntryAndTranslates(t *testing.T) {
	b := New().(*Backend)
	MapPage(b, 0, 0x8000_0000, 0x500000, true)

	paddr, ok := b.translate(0x8000_0000)
	if !ok {
		t.Fatalf("expected translation to succeed")
	}
	if paddr != 0x500000 {
		t.Errorf("expected physical address 0x500000, got 0x%x", paddr)
	}
	if !b.tlb[0].valid {
		t.Errorf("expected TLB row 0 marked valid")
	}
}

func TestTranslateMissReturnsFalse(t *testing.T) {
	b := New().(*Backend)
	if _, ok := b.translate(0xDEAD_0000); ok {
		t.Errorf("expected translation miss for unmapped address")
	}
}

func TestInitMMUIdentityMapsLowMemory(t *testing.T) {
	b := New().(*Backend)
	InitMMU(b)
	paddr, ok := b.translate(0)
	if !ok || paddr != 0 {
		t.Errorf("expected address 0 identity-mapped, got %x %v", paddr, ok)
	}
}

func TestTaskContextSwitch(t *testing.T) {
	old := NewTaskContext(0x1000, 0x2000)
	newer := NewTaskContext(0x3000, 0x4000)
	Switch(old, newer)
	if old.SP != 0x3000 || old.RA != 0x4000 {
		t.Errorf("expected old to take on new's state, got SP=0x%x RA=0x%x", old.SP, old.RA)
	}
}

func TestExceptionContextCause(t *testing.T) {
	cases := []struct {
		excCode uint64
		want    trap.Cause
	}{
		{ExcInt, trap.CauseHardwareInterrupt},
		{ExcMod, trap.CausePageFault},
		{ExcTLBL, trap.CausePageFault},
		{ExcTLBS, trap.CausePageFault},
		{ExcRI, trap.CauseIllegalInstruction},
		{ExcSys, trap.CauseSyscall},
		{ExcAdEL, trap.CauseMisalignedAccess},
		{ExcAdES, trap.CauseMisalignedAccess},
		{31, trap.CauseUnknown},
	}
	for _, c := range cases {
		ec := &ExceptionContext{CauseReg: c.excCode << 2}
		if got := ec.Cause(); got != c.want {
			t.Errorf("excCode=%d: expected %v, got %v", c.excCode, c.want, got)
		}
	}
}

func TestIntcEnableDisableIRQ(t *testing.T) {
	b := New().(*Backend)
	b.EnableIRQ(2)
	word := intcEnableBase + (uint32(2)/32)*4
	if b.mmioReadByte(DefaultConfig.IntcBase+uint64(word)) != 0xFF {
		t.Errorf("expected enable word set after EnableIRQ")
	}
	b.DisableIRQ(2)
	if b.mmioReadByte(DefaultConfig.IntcBase+uint64(word)) != 0 {
		t.Errorf("expected enable word cleared after DisableIRQ")
	}
}

func TestSecurityInit(t *testing.T) {
	b := New().(*Backend)
	if !b.SecurityInit() {
		t.Fatalf("expected SecurityInit to succeed")
	}
}

func TestZeroGPRsClearsEntryHi(t *testing.T) {
	b := New().(*Backend)
	b.WritePrivReg(RegEntryHi, 0xFF)
	b.ZeroGPRs()
	if b.ReadPrivReg(RegEntryHi) != 0 {
		t.Errorf("expected EntryHi cleared")
	}
}

func TestTickTimerAdvancesCount(t *testing.T) {
	b := New().(*Backend)
	before := b.ReadCount()
	b.TickTimer()
	if b.ReadCount() != before+1 {
		t.Errorf("expected Count to advance by 1")
	}
}

func TestDebugPrintDoesNotHang(t *testing.T) {
	b := New().(*Backend)
	b.InitHardware()
	done := make(chan struct{})
	go func() {
		b.DebugPrint([]byte("panic: test\n"))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("DebugPrint hung waiting for transmit-holding-register-empty")
	}
}

func TestHaltBlocksUntilCancelled(t *testing.T) {
	b := New().(*Backend)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Halt(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Halt did not return after cancellation")
	}
}

func TestRebootAndShutdownHalt(t *testing.T) {
	b := New().(*Backend)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Reboot(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Reboot did not return after cancellation")
	}

	ctx2, cancel2 := context.WithCancel(context.Background())
	done2 := make(chan struct{})
	go func() {
		b.Shutdown(ctx2)
		close(done2)
	}()
	cancel2()
	select {
	case <-done2:
	case <-time.After(time.Second):
		t.Fatalf("Shutdown did not return after cancellation")
	}
}
