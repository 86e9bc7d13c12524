package loongarch64

import (
	"context"
	"testing"
	"time"

	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/trap"
)

func TestInitHardwareSetsUpPGDAndMasksInterrupts(t *testing.T) {
	b := New().(*Backend)
	b.InitHardware()
	if b.ReadPrivReg(RegCRMD)&(1<<2) != 0 {
		t.Errorf("expected CRMD interrupt-enable bit cleared after InitHardware")
	}
	if b.ReadPrivReg(RegPGDL) == 0 {
		t.Errorf("expected PGDL to hold a root table address after InitHardware")
	}
}

func TestInterruptMaskToggle(t *testing.T) {
	b := New().(*Backend)
	b.EnableInterrupts()
	if b.ReadPrivReg(RegCRMD)&(1<<2) == 0 {
		t.Errorf("expected CRMD interrupt-enable bit set")
	}
	b.DisableInterrupts()
	if b.ReadPrivReg(RegCRMD)&(1<<2) != 0 {
		t.Errorf("expected CRMD interrupt-enable bit cleared")
	}
}

func TestPrivRegReadWrite(t *testing.T) {
	b := New().(*Backend)
	b.WritePrivReg(RegECFG, 0x77)
	if got := b.ReadPrivReg(RegECFG); got != 0x77 {
		t.Errorf("expected 0x77, got 0x%x", got)
	}
	if got := b.ReadPrivReg(999); got != 0 {
		t.Errorf("unknown reg id should read back zero, got %d", got)
	}
}

func TestMapPageFourLevelWalk(t *testing.T) {
	mem := memsim.NewSpace(32 * 1024 * 1024)
	root := allocTable(mem)
	MapPage(mem, root, 0x8000_0000, 0x400000, PTEWrite)

	d3 := dirIndex(0x8000_0000, 3)
	d2 := dirIndex(0x8000_0000, 2)
	d1 := dirIndex(0x8000_0000, 1)
	d0 := dirIndex(0x8000_0000, 0)

	pud := mem.ReadDword(root+d3*8) & pfnMask
	pmd := mem.ReadDword(pud+d2*8) & pfnMask
	pt := mem.ReadDword(pmd+d1*8) & pfnMask
	leaf := mem.ReadDword(pt + d0*8)

	if leaf&PTEValid == 0 {
		t.Fatalf("expected valid leaf PTE")
	}
	if leaf&pfnMask != 0x400000 {
		t.Errorf("expected physical page 0x400000, got 0x%x", leaf&pfnMask)
	}
}

func TestInitMMUIdentityMapsLowMemory(t *testing.T) {
	mem := memsim.NewSpace(32 * 1024 * 1024)
	root := InitMMU(mem)
	if root == 0 {
		t.Fatalf("expected non-zero root table address")
	}
	d3 := dirIndex(0, 3)
	pud := mem.ReadDword(root+d3*8) & pfnMask
	if pud == 0 {
		t.Errorf("expected identity-mapped low memory to populate the directory chain")
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
		ecode uint64
		want  trap.Cause
	}{
		{EcodeINT, trap.CauseHardwareInterrupt},
		{EcodePIL, trap.CausePageFault},
		{EcodePIS, trap.CausePageFault},
		{EcodeIPE, trap.CauseIllegalInstruction},
		{EcodeSYS, trap.CauseSyscall},
		{EcodeADEM, trap.CauseMisalignedAccess},
		{0x3F, trap.CauseUnknown},
	}
	for _, c := range cases {
		ec := &ExceptionContext{ESTAT: c.ecode << 16}
		if got := ec.Cause(); got != c.want {
			t.Errorf("ecode=0x%x: expected %v, got %v", c.ecode, c.want, got)
		}
	}
}

func TestIntcEnableDisableIRQ(t *testing.T) {
	b := New().(*Backend)
	b.EnableIRQ(3)
	word := intcEnableBase + (uint32(3)/32)*4
	if b.mmioReadByte(DefaultConfig.IntcBase+uint64(word)) != 0xFF {
		t.Errorf("expected enable word set after EnableIRQ")
	}
	b.DisableIRQ(3)
	if b.mmioReadByte(DefaultConfig.IntcBase+uint64(word)) != 0 {
		t.Errorf("expected enable word cleared after DisableIRQ")
	}
}

func TestResolveConfigRejectsBadMagic(t *testing.T) {
	if _, err := ResolveConfig([4]byte{0, 0, 0, 0}); err == nil {
		t.Errorf("expected error for bad magic")
	}
}

func TestResolveConfigAcceptsGoodMagic(t *testing.T) {
	cfg, err := ResolveConfig([4]byte{0xD0, 0x0D, 0xFE, 0xED})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig {
		t.Errorf("expected DefaultConfig returned unchanged")
	}
}

func TestSecurityInit(t *testing.T) {
	b := New().(*Backend)
	if !b.SecurityInit() {
		t.Fatalf("expected SecurityInit to succeed")
	}
}

func TestZeroGPRsClearsECFG(t *testing.T) {
	b := New().(*Backend)
	b.WritePrivReg(RegECFG, 0xFF)
	b.ZeroGPRs()
	if b.ReadPrivReg(RegECFG) != 0 {
		t.Errorf("expected ECFG cleared")
	}
}

func TestTickTimerAdvancesStableCounter(t *testing.T) {
	b := New().(*Backend)
	before := b.ReadStableCounter()
	b.TickTimer()
	if b.ReadStableCounter() != before+1 {
		t.Errorf("expected stable counter to advance by 1")
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
