// Package trap implements the architecture-independent trap/exception
// dispatch every backend's ExceptionContext feeds into.
package trap

import (
	"context"
	"log/slog"
)

// Cause is the closed set of reasons a trap can be taken, common across
// every architecture backend.
type Cause int

const (
	CauseHardwareInterrupt Cause = iota
	CausePageFault
	CauseIllegalInstruction
	CauseSyscall
	CauseMisalignedAccess
	CauseFatalMachineCheck
	CauseUnknown
)

func (c Cause) String() string {
	switch c {
	case CauseHardwareInterrupt:
		return "hardware-interrupt"
	case CausePageFault:
		return "page-fault"
	case CauseIllegalInstruction:
		return "illegal-instruction"
	case CauseSyscall:
		return "syscall"
	case CauseMisalignedAccess:
		return "misaligned-access"
	case CauseFatalMachineCheck:
		return "fatal-machine-check"
	default:
		return "unknown"
	}
}

// isFatal reports whether a cause must always route to Panic rather than
// resuming the interrupted task.
func (c Cause) isFatal() bool {
	return c == CauseFatalMachineCheck || c == CauseUnknown
}

// ArchContext is the minimal view of an architecture's ExceptionContext
// the generic dispatcher needs.
type ArchContext interface {
	Cause() Cause
	FaultAddr() uint64
	PC() uint64
	SetPC(uint64)
	Status() uint64
}

// Halter is implemented by a platform.Contract so Panic can park the core.
type Halter interface {
	Halt(ctx context.Context)
	DebugPrint(b []byte)
}

// HandlerFunc services a specific, non-fatal cause. It returns true if the
// trap was handled and the interrupted task should resume.
type HandlerFunc func(ac ArchContext) bool

// Dispatcher routes traps to per-cause handlers and falls back to Panic
// for anything unhandled or fatal.
type Dispatcher struct {
	log      *slog.Logger
	platform Halter
	handlers map[Cause]HandlerFunc
}

// NewDispatcher builds a Dispatcher bound to the given platform (for
// logging and, on a fatal trap, halting) and logger.
func NewDispatcher(platform Halter, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		log:      log,
		platform: platform,
		handlers: make(map[Cause]HandlerFunc),
	}
}

// Handle registers a handler for a specific, non-fatal cause.
func (d *Dispatcher) Handle(cause Cause, fn HandlerFunc) {
	d.handlers[cause] = fn
}

// Dispatch routes ac to the registered handler for its cause, or to Panic
// if none is registered or the cause is inherently fatal.
func (d *Dispatcher) Dispatch(ctx context.Context, ac ArchContext) {
	cause := ac.Cause()
	if !cause.isFatal() {
		if fn, ok := d.handlers[cause]; ok {
			if fn(ac) {
				return
			}
		}
	}
	d.Panic(ctx, ac)
}

// Panic logs the fault, prints a boot-console banner, and parks the core
// via Halt. It returns only when Halt does (when ctx is cancelled).
func (d *Dispatcher) Panic(ctx context.Context, ac ArchContext) {
	d.log.Error("kernel panic",
		slog.String("cause", ac.Cause().String()),
		slog.Uint64("pc", ac.PC()),
		slog.Uint64("fault_addr", ac.FaultAddr()),
		slog.Uint64("status", ac.Status()),
	)
	banner := []byte("\n*** NANOKERNEL PANIC: " + ac.Cause().String() + " ***\n")
	d.platform.DebugPrint(banner)
	d.platform.Halt(ctx)
}
