package amd64

import (
	"context"
	"testing"
	"time"

	"github.com/nanokernel/nanokernel/kernel/memsim"
	"github.com/nanokernel/nanokernel/kernel/trap"
)

func TestInitHardwareSetsUpPagingAndMasksInterrupts(t *testing.T) {
	b := New().(*Backend)
	b.InitHardware()
	if !b.irqsOff {
		t.Errorf("InitHardware should leave interrupts disabled until explicitly enabled")
	}
	if b.ReadPrivReg(RegCR3) == 0 {
		t.Errorf("expected CR3 to hold a non-zero PML4 address after InitHardware")
	}
}

func TestPrivRegReadWrite(t *testing.T) {
	b := New().(*Backend)
	b.WritePrivReg(RegCR0, 0x1234)
	if got := b.ReadPrivReg(RegCR0); got != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%x", got)
	}
	if got := b.ReadPrivReg(999); got != 0 {
		t.Errorf("unknown reg id should read back zero, got %d", got)
	}
}

func TestInterruptMaskToggle(t *testing.T) {
	b := New().(*Backend)
	b.DisableInterrupts()
	if !b.irqsOff {
		t.Errorf("expected interrupts disabled")
	}
	b.EnableInterrupts()
	if b.irqsOff {
		t.Errorf("expected interrupts enabled")
	}
}

func TestMemoryReadWrite(t *testing.T) {
	b := New().(*Backend)
	b.WriteByteToAddress(0x100, 0xAB)
	if got := b.ReadByteFromAddress(0x100); got != 0xAB {
		t.Errorf("expected 0xAB, got 0x%02x", got)
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
	select {
	case <-done:
		t.Fatalf("Halt returned before context was cancelled")
	case <-time.After(20 * time.Millisecond):
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Halt did not return after cancellation")
	}
}

func TestMapPageAndReadback(t *testing.T) {
	mem := memsim.NewSpace(32 * 1024 * 1024)
	pml4 := allocPageTable(mem)
	MapPage(mem, pml4, 0x2000_0000, 0x100000, FlagWritable)

	pml4i, pdpti, pdi, pti := getIndices(0x2000_0000)
	pdptAddr := mem.ReadDword(pml4+pml4i*8) &^ 0xFFF
	pdAddr := mem.ReadDword(pdptAddr+pdpti*8) &^ 0xFFF
	ptAddr := mem.ReadDword(pdAddr+pdi*8) &^ 0xFFF
	entry := mem.ReadDword(ptAddr + pti*8)
	if entry&FlagPresent == 0 {
		t.Fatalf("expected present bit set in leaf entry")
	}
	if entry&entryAddrMask != 0x100000 {
		t.Errorf("expected physical address 0x100000 in leaf entry, got 0x%x", entry&entryAddrMask)
	}
}

func TestInitMMUIdentityMapsLowMemory(t *testing.T) {
	mem := memsim.NewSpace(32 * 1024 * 1024)
	pml4 := InitMMU(mem)
	if pml4 == 0 {
		t.Fatalf("expected non-zero PML4 address")
	}
}

func TestTaskContextSwitch(t *testing.T) {
	old := NewTaskContext(0x1000, 0x2000)
	newer := NewTaskContext(0x3000, 0x4000)
	Switch(old, newer)
	if old.RSP != 0x3000 || old.RIP != 0x4000 {
		t.Errorf("expected old to take on new's register state, got RSP=0x%x RIP=0x%x", old.RSP, old.RIP)
	}
}

func TestExceptionContextCause(t *testing.T) {
	cases := []struct {
		vector uint64
		want   trap.Cause
	}{
		{VectorPageFault, trap.CausePageFault},
		{VectorInvalidOpcode, trap.CauseIllegalInstruction},
		{VectorDoubleFault, trap.CauseFatalMachineCheck},
		{VectorGPF, trap.CauseFatalMachineCheck},
		{VectorTimer, trap.CauseHardwareInterrupt},
		{999, trap.CauseUnknown},
	}
	for _, c := range cases {
		ec := &ExceptionContext{Vector: c.vector}
		if got := ec.Cause(); got != c.want {
			t.Errorf("vector %d: expected %v, got %v", c.vector, c.want, got)
		}
	}
}

func TestPICMaskUnmask(t *testing.T) {
	b := New().(*Backend)
	b.initPIC()
	b.MaskIRQ(1)
	if b.inb(pic1Data)&(1<<1) == 0 {
		t.Errorf("expected IRQ1 masked")
	}
	b.UnmaskIRQ(1)
	if b.inb(pic1Data)&(1<<1) != 0 {
		t.Errorf("expected IRQ1 unmasked")
	}
}

func TestSecurityInitEnablesNXAndWP(t *testing.T) {
	b := New().(*Backend)
	if !b.SecurityInit() {
		t.Fatalf("expected SecurityInit to succeed")
	}
	if b.ReadPrivReg(RegEFER)&eferNXE == 0 {
		t.Errorf("expected NXE bit set")
	}
	if b.ReadPrivReg(RegCR0)&cr0WP == 0 {
		t.Errorf("expected WP bit set")
	}
}

func TestZeroGPRsClearsRFLAGS(t *testing.T) {
	b := New().(*Backend)
	b.WritePrivReg(RegRFLAGS, 0xFF)
	b.ZeroGPRs()
	if b.ReadPrivReg(RegRFLAGS) != 0 {
		t.Errorf("expected RFLAGS cleared")
	}
}

func TestTickTimerAdvancesCycleCounter(t *testing.T) {
	b := New().(*Backend)
	before := b.ReadCycleCounter()
	b.TickTimer()
	if b.ReadCycleCounter() != before+1 {
		t.Errorf("expected cycle counter to advance by 1")
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

func TestShutdownHalts(t *testing.T) {
	b := New().(*Backend)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Shutdown(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Shutdown did not return after cancellation")
	}
}
