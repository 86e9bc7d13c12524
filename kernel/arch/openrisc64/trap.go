package openrisc64

import "github.com/nanokernel/nanokernel/kernel/trap"

// Exception vector offsets OpenRISC dispatches through (each vector is a
// fixed address, not a coded field, but the original's exception.rs still
// classifies by which vector fired).
const (
	VectorExternalInt = 0x08
	VectorDTLBMiss    = 0x09
	VectorITLBMiss    = 0x0A
	VectorIllegalInsn = 0x07
	VectorSyscall     = 0x0C
	VectorAlignment   = 0x06
)

type ExceptionContext struct {
	Vector uint64
	EPCR   uint64
	EEAR   uint64
	SR     uint64
}

func (e *ExceptionContext) Cause() trap.Cause {
	switch e.Vector {
	case VectorExternalInt:
		return trap.CauseHardwareInterrupt
	case VectorDTLBMiss, VectorITLBMiss:
		return trap.CausePageFault
	case VectorIllegalInsn:
		return trap.CauseIllegalInstruction
	case VectorSyscall:
		return trap.CauseSyscall
	case VectorAlignment:
		return trap.CauseMisalignedAccess
	default:
		return trap.CauseUnknown
	}
}

func (e *ExceptionContext) FaultAddr() uint64 { return e.EEAR }
func (e *ExceptionContext) PC() uint64        { return e.EPCR }
func (e *ExceptionContext) SetPC(pc uint64)   { e.EPCR = pc }
func (e *ExceptionContext) Status() uint64    { return e.SR }
