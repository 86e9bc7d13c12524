package mips64

// TaskContext holds MIPS's callee-saved register set (s0-s7, gp, sp, fp,
// ra) in switch-trampoline order.
type TaskContext struct {
	S0, S1, S2, S3, S4, S5, S6, S7 uint64
	GP uint64
	SP uint64
	FP uint64
	RA uint64
}

func NewTaskContext(stackTop, entry uint64) *TaskContext {
	return &TaskContext{SP: stackTop, RA: entry}
}

func Switch(old, new *TaskContext) {
	*old = *new
}
