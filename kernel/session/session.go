// Package session holds the wired-together runtime state a boot of the
// kernel operates on: the selected architecture backend, the static task
// stack allocator, and the IPC queues tasks send through. It is the
// software-model stand-in for the single running core a real boot would
// hand control to.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nanokernel/nanokernel/kernel/constants"
	"github.com/nanokernel/nanokernel/kernel/hwconfig"
	"github.com/nanokernel/nanokernel/kernel/ipc"
	"github.com/nanokernel/nanokernel/kernel/platform"
	"github.com/nanokernel/nanokernel/kernel/taskmem"
)

// Session is the live state of one booted kernel instance.
type Session struct {
	wg      sync.WaitGroup
	done    chan struct{}
	running bool

	Arch   platform.Contract
	Config hwconfig.Config
	Stacks *taskmem.Allocator
	Queues map[uint8]*ipc.Queue
	qmu    sync.Mutex
}

// New wires a Session around the active architecture backend and a default
// hardware config, before any boot-override file is applied.
func New(arch platform.Contract, cfg hwconfig.Config) *Session {
	return &Session{
		done:   make(chan struct{}),
		Arch:   arch,
		Config: cfg,
		Stacks: taskmem.NewAllocator(),
		Queues: make(map[uint8]*ipc.Queue),
	}
}

// Boot runs InitHardware exactly once and marks the session running.
func (s *Session) Boot() {
	if s.running {
		return
	}
	s.Arch.InitHardware()
	s.running = true
	slog.Info("boot complete", "console_base", s.Config.ConsoleBase, "ram_size", s.Config.RAMSize)
}

// Running reports whether Boot has been called without a matching Halt.
func (s *Session) Running() bool {
	return s.running
}

// Halt parks the architecture backend's core until ctx is cancelled, then
// marks the session stopped. Blocks the caller; run it in its own
// goroutine to keep a console usable.
func (s *Session) Halt(ctx context.Context) {
	s.wg.Add(1)
	defer s.wg.Done()
	s.Arch.Halt(ctx)
	s.running = false
	close(s.done)
}

// Reboot re-runs InitHardware without tearing down allocated state, the
// model's stand-in for a warm reset.
func (s *Session) Reboot() {
	s.done = make(chan struct{})
	s.Arch.InitHardware()
	s.running = true
	slog.Info("reboot complete")
}

// Queue returns task id's IPC queue, creating it on first use.
func (s *Session) Queue(id uint8) *ipc.Queue {
	s.qmu.Lock()
	defer s.qmu.Unlock()
	q, ok := s.Queues[id]
	if !ok {
		q = ipc.NewQueue()
		s.Queues[id] = q
	}
	return q
}

// MaxTasks is the fixed upper bound on task ids a Session will accept, the
// same limit the stack allocator enforces.
const MaxTasks = constants.MaxTasks
