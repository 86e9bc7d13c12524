// Package taskmem provides the static task stack allocator: a fixed table
// of MaxTasks fixed-size stacks carved out of a reserved virtual-address
// window, with no dynamic allocation involved.
package taskmem

import (
	"github.com/nanokernel/nanokernel/kernel/constants"
	"github.com/nanokernel/nanokernel/kernel/kernelerr"
	"github.com/nanokernel/nanokernel/kernel/spinlock"
)

const (
	// TaskStacksVaddrStart is the base virtual address of the task stack
	// window.
	TaskStacksVaddrStart uint64 = 0xC100_0000
	// TaskStackSize is the fixed size of one task's stack, in bytes.
	TaskStackSize uint64 = 8 * 1024
)

// Allocator hands out fixed-size task stacks from a static pool of
// constants.MaxTasks slots.
type Allocator struct {
	lock      spinlock.Spinlock
	allocated [constants.MaxTasks]bool
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// StackBase returns the base virtual address of task id's stack slot,
// regardless of whether it is currently allocated.
func StackBase(id int) uint64 {
	return TaskStacksVaddrStart + uint64(id)*TaskStackSize
}

// Allocate reserves task id's stack slot and returns the address of its
// top (the stack grows down from this address).
func (a *Allocator) Allocate(id int) (uint64, error) {
	if id < 0 || id >= constants.MaxTasks {
		return 0, kernelerr.ErrInvalidArgument
	}
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.allocated[id] {
		return 0, kernelerr.ErrResourceBusy
	}
	a.allocated[id] = true
	return StackBase(id) + TaskStackSize, nil
}

// Deallocate releases task id's stack slot.
func (a *Allocator) Deallocate(id int) error {
	if id < 0 || id >= constants.MaxTasks {
		return kernelerr.ErrInvalidArgument
	}
	a.lock.Lock()
	defer a.lock.Unlock()
	if !a.allocated[id] {
		return kernelerr.ErrNotFound
	}
	a.allocated[id] = false
	return nil
}
