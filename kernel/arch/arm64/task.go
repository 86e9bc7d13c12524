package arm64

// TaskContext holds AArch64's callee-saved register set (x19-x29, LR, SP)
// in the order a real switch_context trampoline would push/pop them.
type TaskContext struct {
	X19, X20, X21, X22, X23, X24, X25, X26, X27, X28 uint64
	FP  uint64 // x29
	LR  uint64 // x30, resume PC
	SP  uint64
}

func NewTaskContext(stackTop, entry uint64) *TaskContext {
	return &TaskContext{SP: stackTop, LR: entry}
}

// Switch resumes the task described by new in place of old, implemented as
// a struct copy rather than AArch64's stp/ldp sequence.
func Switch(old, new *TaskContext) {
	*old = *new
}
