package riscv64

// TaskContext holds RV64's callee-saved register set (s0-s11, sp, ra) in
// the order a real switch_context trampoline would push/pop them.
type TaskContext struct {
	S0, S1, S2, S3, S4, S5, S6, S7, S8, S9, S10, S11 uint64
	SP uint64
	RA uint64 // resume PC
}

func NewTaskContext(stackTop, entry uint64) *TaskContext {
	return &TaskContext{SP: stackTop, RA: entry}
}

func Switch(old, new *TaskContext) {
	*old = *new
}
