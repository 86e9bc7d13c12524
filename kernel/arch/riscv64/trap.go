package riscv64

import "github.com/nanokernel/nanokernel/kernel/trap"

// scause cause codes the original's trap_handler distinguishes (interrupt
// bit set separately in IsInterrupt).
const (
	CauseInstrMisaligned = 0
	CauseIllegalInstr    = 2
	CauseBreakpoint      = 3
	CauseLoadMisaligned  = 4
	CauseStoreMisaligned = 6
	CauseEnvCallU        = 8
	CauseEnvCallS        = 9
	CauseInstrPageFault  = 12
	CauseLoadPageFault   = 13
	CauseStorePageFault  = 15
)

type ExceptionContext struct {
	SEPC        uint64
	SCause      uint64
	STval       uint64 // faulting address
	SStatus     uint64
	IsInterrupt bool
}

func (e *ExceptionContext) Cause() trap.Cause {
	if e.IsInterrupt {
		return trap.CauseHardwareInterrupt
	}
	switch e.SCause {
	case CauseInstrPageFault, CauseLoadPageFault, CauseStorePageFault:
		return trap.CausePageFault
	case CauseIllegalInstr:
		return trap.CauseIllegalInstruction
	case CauseEnvCallU, CauseEnvCallS:
		return trap.CauseSyscall
	case CauseInstrMisaligned, CauseLoadMisaligned, CauseStoreMisaligned:
		return trap.CauseMisalignedAccess
	default:
		return trap.CauseUnknown
	}
}

func (e *ExceptionContext) FaultAddr() uint64 { return e.STval }
func (e *ExceptionContext) PC() uint64        { return e.SEPC }
func (e *ExceptionContext) SetPC(pc uint64)   { e.SEPC = pc }
func (e *ExceptionContext) Status() uint64    { return e.SStatus }
