package amd64

// TaskContext holds the callee-saved register set a context switch must
// preserve. The field order matches the hard contract a real switch
// trampoline relies on: the original's switch_context addresses RSP at
// byte offset 48 and RIP at byte offset 56 within this struct, computed as
// 6*8 and 7*8 from R15 at offset 0. This rewrite performs the swap as a
// plain struct copy rather than a push/pop-and-jmp sequence, but keeps the
// field order documented here because the offsets are part of the
// contract other tooling (a debugger, a crash-dump reader) would rely on.
type TaskContext struct {
	R15 uint64 // offset 0
	R14 uint64 // offset 8
	R13 uint64 // offset 16
	R12 uint64 // offset 24
	RBP uint64 // offset 32
	RBX uint64 // offset 40
	RSP uint64 // offset 48
	RIP uint64 // offset 56
}

// NewTaskContext builds the initial context for a task whose stack top is
// stackTop and whose first instruction is entry.
func NewTaskContext(stackTop, entry uint64) *TaskContext {
	return &TaskContext{
		RSP: stackTop,
		RIP: entry,
	}
}

// Switch suspends the task described by old and resumes the task
// described by new: it is the struct-copy stand-in for the original's
// inline-asm switch_context trampoline, which instead pushes the live
// callee-saved registers onto the old stack and pops new's from its own.
// Here old is simply overwritten with whatever new held, since there are
// no physical registers to save other than the struct itself.
func Switch(old, new *TaskContext) {
	*old = *new
}
