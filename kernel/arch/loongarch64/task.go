package loongarch64

// TaskContext holds LoongArch's callee-saved registers (s0-s8, fp, sp, ra).
type TaskContext struct {
	S0, S1, S2, S3, S4, S5, S6, S7, S8 uint64
	FP uint64
	SP uint64
	RA uint64
}

func NewTaskContext(stackTop, entry uint64) *TaskContext {
	return &TaskContext{SP: stackTop, RA: entry}
}

func Switch(old, new *TaskContext) {
	*old = *new
}
