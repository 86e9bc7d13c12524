package openrisc64

// TaskContext holds OpenRISC's callee-saved registers (r10, r14-r28 even,
// r1/sp, r9/ra), simplified here to a flat named set.
type TaskContext struct {
	R10, R14, R16, R18, R20, R22, R24, R26, R28 uint64
	SP uint64 // r1
	RA uint64 // r9
}

func NewTaskContext(stackTop, entry uint64) *TaskContext {
	return &TaskContext{SP: stackTop, RA: entry}
}

func Switch(old, new *TaskContext) {
	*old = *new
}
