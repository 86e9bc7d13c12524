package sparcv9

// TaskContext holds SPARC V9's callee-saved state for a context switch
// modeled at the window-save-area level: the stack pointer (%sp/%o6, which
// becomes %i6 after a save), return PC (%o7), and the eight locals a real
// switch must flush from the register windows before handing off; the ins
// are not held.
type TaskContext struct {
	SP uint64 // %sp
	RA uint64 // %o7, resume PC
	L0, L1, L2, L3, L4, L5, L6, L7 uint64
}

func NewTaskContext(stackTop, entry uint64) *TaskContext {
	return &TaskContext{SP: stackTop, RA: entry}
}

// Switch resumes the task described by new. A real SPARC switch must
// flush the register windows (see the Backend.PrePanic note on the
// same requirement for a fatal trap) before the stack pointer changes;
// this simulated model has no windows of its own to flush.
func Switch(old, new *TaskContext) {
	*old = *new
}
