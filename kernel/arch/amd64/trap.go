package amd64

import "github.com/nanokernel/nanokernel/kernel/trap"

// Vectors matching the original's IDT wiring (divide-by-zero, invalid
// opcode, double fault, GPF, page fault, timer, keyboard).
const (
	VectorDivideByZero = 0
	VectorInvalidOpcode = 6
	VectorDoubleFault   = 8
	VectorGPF           = 13
	VectorPageFault     = 14
	VectorTimer         = 32
	VectorKeyboard      = 33
)

// ExceptionContext mirrors the register frame the original's
// generic_exception_handler receives: instruction pointer, code segment,
// flags, stack pointer, stack segment, plus an optional error code for
// the vectors that push one.
type ExceptionContext struct {
	Vector           uint64
	ErrorCode        uint64
	HasErrorCode     bool
	InstructionPointer uint64
	CodeSegment      uint64
	CPUFlags         uint64
	StackPointer     uint64
	StackSegment     uint64
	CR2              uint64 // faulting address, valid only for page faults
}

func (e *ExceptionContext) Cause() trap.Cause {
	switch e.Vector {
	case VectorPageFault:
		return trap.CausePageFault
	case VectorInvalidOpcode:
		return trap.CauseIllegalInstruction
	case VectorDoubleFault, VectorGPF:
		return trap.CauseFatalMachineCheck
	case VectorTimer, VectorKeyboard:
		return trap.CauseHardwareInterrupt
	case VectorDivideByZero:
		return trap.CauseIllegalInstruction
	default:
		return trap.CauseUnknown
	}
}

func (e *ExceptionContext) FaultAddr() uint64 { return e.CR2 }
func (e *ExceptionContext) PC() uint64        { return e.InstructionPointer }
func (e *ExceptionContext) SetPC(pc uint64)   { e.InstructionPointer = pc }
func (e *ExceptionContext) Status() uint64    { return e.CPUFlags }
