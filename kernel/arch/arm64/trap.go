package arm64

import "github.com/nanokernel/nanokernel/kernel/trap"

// Exception classes from ESR_EL1.EC, the ones the original's vector table
// distinguishes.
const (
	ECUnknown       = 0x00
	ECIllegalExec   = 0x0E
	ECSVC64         = 0x15
	ECDataAbortLo   = 0x24
	ECDataAbortEq   = 0x25
	ECSErrorIRQ     = 0x2F
)

// ExceptionContext mirrors the register save frame AArch64's vector stubs
// build before dispatch: saved PC (ELR_EL1), PSTATE (SPSR_EL1), faulting
// address (FAR_EL1), and the ESR_EL1 syndrome.
type ExceptionContext struct {
	ELR   uint64
	SPSR  uint64
	FAR   uint64
	ESR   uint64
	IsIRQ bool
}

func (e *ExceptionContext) ec() uint64 { return (e.ESR >> 26) & 0x3F }

func (e *ExceptionContext) Cause() trap.Cause {
	if e.IsIRQ {
		return trap.CauseHardwareInterrupt
	}
	switch e.ec() {
	case ECDataAbortLo, ECDataAbortEq:
		return trap.CausePageFault
	case ECIllegalExec:
		return trap.CauseIllegalInstruction
	case ECSVC64:
		return trap.CauseSyscall
	case ECSErrorIRQ:
		return trap.CauseFatalMachineCheck
	default:
		return trap.CauseUnknown
	}
}

func (e *ExceptionContext) FaultAddr() uint64 { return e.FAR }
func (e *ExceptionContext) PC() uint64        { return e.ELR }
func (e *ExceptionContext) SetPC(pc uint64)   { e.ELR = pc }
func (e *ExceptionContext) Status() uint64    { return e.SPSR }
