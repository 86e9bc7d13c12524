package powerpc64

import "github.com/nanokernel/nanokernel/kernel/trap"

// Interrupt vector offsets PowerPC dispatches through.
const (
	VectorExternal     = 0x500
	VectorDataStorage   = 0x300
	VectorInstrStorage  = 0x400
	VectorProgram       = 0x700 // illegal instruction / privilege violation
	VectorSyscall       = 0xC00
	VectorAlignment     = 0x600
	VectorMachineCheck  = 0x200
)

type ExceptionContext struct {
	Vector uint64
	SRR0   uint64 // resume address
	SRR1   uint64 // saved MSR
	DAR    uint64 // faulting address
}

func (e *ExceptionContext) Cause() trap.Cause {
	switch e.Vector {
	case VectorExternal:
		return trap.CauseHardwareInterrupt
	case VectorDataStorage, VectorInstrStorage:
		return trap.CausePageFault
	case VectorProgram:
		return trap.CauseIllegalInstruction
	case VectorSyscall:
		return trap.CauseSyscall
	case VectorAlignment:
		return trap.CauseMisalignedAccess
	case VectorMachineCheck:
		return trap.CauseFatalMachineCheck
	default:
		return trap.CauseUnknown
	}
}

func (e *ExceptionContext) FaultAddr() uint64 { return e.DAR }
func (e *ExceptionContext) PC() uint64        { return e.SRR0 }
func (e *ExceptionContext) SetPC(pc uint64)   { e.SRR0 = pc }
func (e *ExceptionContext) Status() uint64    { return e.SRR1 }
