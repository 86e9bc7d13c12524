package loongarch64

import "github.com/nanokernel/nanokernel/kernel/trap"

// ESTAT.Ecode exception codes the original's exception.rs distinguishes.
const (
	EcodeINT  = 0x00
	EcodePIL  = 0x01 // page invalid, load
	EcodePIS  = 0x02 // page invalid, store
	EcodeIPE  = 0x0C // instruction privilege error
	EcodeSYS  = 0x0B
	EcodeADEM = 0x08 // address error (misaligned)
)

type ExceptionContext struct {
	ERA    uint64 // exception return address
	ESTAT  uint64
	BADV   uint64 // faulting address
	PRMD   uint64
}

func (e *ExceptionContext) ecode() uint64 { return (e.ESTAT >> 16) & 0x3F }

func (e *ExceptionContext) Cause() trap.Cause {
	switch e.ecode() {
	case EcodeINT:
		return trap.CauseHardwareInterrupt
	case EcodePIL, EcodePIS:
		return trap.CausePageFault
	case EcodeIPE:
		return trap.CauseIllegalInstruction
	case EcodeSYS:
		return trap.CauseSyscall
	case EcodeADEM:
		return trap.CauseMisalignedAccess
	default:
		return trap.CauseUnknown
	}
}

func (e *ExceptionContext) FaultAddr() uint64 { return e.BADV }
func (e *ExceptionContext) PC() uint64        { return e.ERA }
func (e *ExceptionContext) SetPC(pc uint64)   { e.ERA = pc }
func (e *ExceptionContext) Status() uint64    { return e.PRMD }
