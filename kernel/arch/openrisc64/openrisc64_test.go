package openrisc64

import (
	"context"
	"testing"
	"time"

	"github.com/nanokernel/nanokernel/kernel/trap"
)

func TestInitHardwareInstallsTLBsAndMasksInterrupts(t *testing.T) {
	b := New().(*Backend)
	b.InitHardware()
	if b.ReadPrivReg(RegSR)&(1<<2) != 0 {
		t.Errorf("expected SR.IEE cleared after InitHardware")
	}
	if !b.dtlb[0].valid || !b.itlb[0].valid {
		t.Errorf("expected TLB entry 0 populated by InitMMU in both TLBs")
	}
}

func TestInterruptMaskToggle(t *testing.T) {
	b := New().(*Backend)
	b.EnableInterrupts()
	if b.ReadPrivReg(RegSR)&(1<<2) == 0 {
		t.Errorf("expected SR.IEE set")
	}
	b.DisableInterrupts()
	if b.ReadPrivReg(RegSR)&(1<<2) != 0 {
		t.Errorf("expected SR.IEE cleared")
	}
}

func TestPrivRegReadWrite(t *testing.T) {
	b := New().(*Backend)
	b.WritePrivReg(RegEPCR, 0x4040)
	if got := b.ReadPrivReg(RegEPCR); got != 0x4040 {
		t.Errorf("expected 0x4040, got 0x%x", got)
	}
	if got := b.ReadPrivReg(999); got != 0 {
		t.Errorf("unknown reg id should read back zero, got %d", got)
	}
}

func TestMapPageInstallsBothTLBsAndTranslates(t *testing.T) {
	b := New().(*Backend)
	MapPage(b, 0, 0x1000_0000, 0x600000, true, true)

	paddr, ok := b.translateData(0x1000_0000)
	if !ok {
		t.Fatalf("expected data translation to succeed")
	}
	if paddr != 0x600000 {
		t.Errorf("expected physical address 0x600000, got 0x%x", paddr)
	}
	if !b.itlb[0].valid {
		t.Errorf("expected instruction TLB populated for executable mapping")
	}
}

func TestMapPageNonExecutableSkipsITLB(t *testing.T) {
	b := New().(*Backend)
	MapPage(b, 1, 0x2000_0000, 0x700000, true, false)
	if b.itlb[1].valid {
		t.Errorf("expected instruction TLB left untouched for non-executable mapping")
	}
}

func TestTranslateDataMissReturnsFalse(t *testing.T) {
	b := New().(*Backend)
	if _, ok := b.translateData(0xDEAD_0000); ok {
		t.Errorf("expected translation miss for unmapped address")
	}
}

func TestInitMMUIdentityMapsLowMemory(t *testing.T) {
	b := New().(*Backend)
	InitMMU(b)
	paddr, ok := b.translateData(0)
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
		vector uint64
		want   trap.Cause
	}{
		{VectorExternalInt, trap.CauseHardwareInterrupt},
		{VectorDTLBMiss, trap.CausePageFault},
		{VectorITLBMiss, trap.CausePageFault},
		{VectorIllegalInsn, trap.CauseIllegalInstruction},
		{VectorSyscall, trap.CauseSyscall},
		{VectorAlignment, trap.CauseMisalignedAccess},
		{0xFF, trap.CauseUnknown},
	}
	for _, c := range cases {
		ec := &ExceptionContext{Vector: c.vector}
		if got := ec.Cause(); got != c.want {
			t.Errorf("vector=0x%x: expected %v, got %v", c.vector, c.want, got)
		}
	}
}

func TestPICEnableDisableIRQ(t *testing.T) {
	b := New().(*Backend)
	b.EnableIRQ(1)
	word := picEnableBase + (uint32(1)/32)*4
	if b.mmioReadByte(DefaultConfig.IntcBase+uint64(word)) != 0xFF {
		t.Errorf("expected enable word set after EnableIRQ")
	}
	b.DisableIRQ(1)
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

func TestZeroGPRsClearsEEAR(t *testing.T) {
	b := New().(*Backend)
	b.WritePrivReg(RegEEAR, 0xFF)
	b.ZeroGPRs()
	if b.ReadPrivReg(RegEEAR) != 0 {
		t.Errorf("expected EEAR cleared")
	}
}

func TestTickTimerAdvances(t *testing.T) {
	b := New().(*Backend)
	before := b.ReadTickTimer()
	b.TickTimer()
	if b.ReadTickTimer() != before+1 {
		t.Errorf("expected tick timer to advance by 1")
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
