package mips64

import "github.com/nanokernel/nanokernel/kernel/trap"

// CP0 Cause.ExcCode values the original's exception.rs distinguishes.
const (
	ExcInt  = 0
	ExcMod  = 1 // TLB modification
	ExcTLBL = 2 // TLB miss, load
	ExcTLBS = 3 // TLB miss, store
	ExcAdEL = 4 // address error, load
	ExcAdES = 5
	ExcRI   = 10 // reserved instruction
	ExcSys  = 8
)

type ExceptionContext struct {
	EPC      uint64
	CauseReg uint64 // CP0 Cause
	BadVAddr uint64
	StatusReg uint64
}

func (e *ExceptionContext) excCode() uint64 { return (e.CauseReg >> 2) & 0x1F }

func (e *ExceptionContext) Cause() trap.Cause {
	switch e.excCode() {
	case ExcInt:
		return trap.CauseHardwareInterrupt
	case ExcMod, ExcTLBL, ExcTLBS:
		return trap.CausePageFault
	case ExcRI:
		return trap.CauseIllegalInstruction
	case ExcSys:
		return trap.CauseSyscall
	case ExcAdEL, ExcAdES:
		return trap.CauseMisalignedAccess
	default:
		return trap.CauseUnknown
	}
}

func (e *ExceptionContext) FaultAddr() uint64 { return e.BadVAddr }
func (e *ExceptionContext) PC() uint64        { return e.EPC }
func (e *ExceptionContext) SetPC(pc uint64)   { e.EPC = pc }
func (e *ExceptionContext) Status() uint64    { return e.StatusReg }
