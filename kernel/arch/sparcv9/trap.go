package sparcv9

import "github.com/nanokernel/nanokernel/kernel/trap"

// Trap type numbers SPARC V9's trap table dispatches through.
const (
	TTInterruptLevel1 = 0x41 // through 0x4F for levels 1-15
	TTInterruptLevel15 = 0x4F
	TTInstrAccessExc  = 0x08
	TTDataAccessExc   = 0x30
	TTIllegalInstr    = 0x02
	TTMemAddrNotAlign = 0x34
	TTSpillOrSyscall  = 0x100 // software traps, including syscall, live here up
)

type ExceptionContext struct {
	TT   uint64 // trap type
	TPC  uint64 // trap PC
	TSTATE uint64
	SFAR uint64 // synchronous fault address register
}

// PrePanic performs SPARC's register-window flush before a fatal trap
// banner is printed, since a real implementation must spill all windows to
// the stack before the machine state can be trusted for a crash dump.
func (b *Backend) PrePanic() {
	b.BarrierInstr()
}

func (e *ExceptionContext) Cause() trap.Cause {
	switch {
	case e.TT >= TTInterruptLevel1 && e.TT <= TTInterruptLevel15:
		return trap.CauseHardwareInterrupt
	case e.TT == TTInstrAccessExc || e.TT == TTDataAccessExc:
		return trap.CausePageFault
	case e.TT == TTIllegalInstr:
		return trap.CauseIllegalInstruction
	case e.TT == TTMemAddrNotAlign:
		return trap.CauseMisalignedAccess
	case e.TT >= TTSpillOrSyscall:
		return trap.CauseSyscall
	default:
		return trap.CauseUnknown
	}
}

func (e *ExceptionContext) FaultAddr() uint64 { return e.SFAR }
func (e *ExceptionContext) PC() uint64        { return e.TPC }
func (e *ExceptionContext) SetPC(pc uint64)   { e.TPC = pc }
func (e *ExceptionContext) Status() uint64    { return e.TSTATE }
