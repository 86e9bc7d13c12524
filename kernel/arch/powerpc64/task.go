package powerpc64

// TaskContext holds PowerPC's callee-saved registers (r14-r31, LR, CR, SP).
type TaskContext struct {
	R14, R15, R16, R17, R18, R19, R20, R21 uint64
	R22, R23, R24, R25, R26, R27, R28, R29, R30, R31 uint64
	LR uint64
	CR uint64
	SP uint64 // r1
}

func NewTaskContext(stackTop, entry uint64) *TaskContext {
	return &TaskContext{SP: stackTop, LR: entry}
}

func Switch(old, new *TaskContext) {
	*old = *new
}
