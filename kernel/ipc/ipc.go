// Package ipc implements the fixed-depth, lock-free single-producer/
// single-consumer message queue tasks use to talk to each other.
package ipc

import (
	"sync/atomic"

	"github.com/nanokernel/nanokernel/kernel/constants"
)

// MessageDataSize is the fixed payload capacity of an IpcMessage.
const MessageDataSize = 64

// Message is a fixed-size IPC message.
type Message struct {
	SenderID    uint8
	MessageType uint8
	Payload     [MessageDataSize]byte
	PayloadSize uint8
}

// Queue is a fixed-depth ring buffer of Messages, safe for one producer and
// one consumer to use concurrently without a lock.
type Queue struct {
	messages [constants.DefaultIPCQueueDepth]Message
	head     atomic.Uint64
	tail     atomic.Uint64
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) depth() uint64 {
	return uint64(len(q.messages))
}

// IsEmpty reports whether the queue currently holds no messages.
func (q *Queue) IsEmpty() bool {
	return q.head.Load() == q.tail.Load()
}

// IsFull reports whether the queue currently has no free slot. One slot is
// always kept empty to distinguish full from empty using only head and
// tail counters.
func (q *Queue) IsFull() bool {
	return q.tail.Load()-q.head.Load() == q.depth()-1
}

// Send enqueues msg. It reports false without modifying the queue if the
// queue is full.
func (q *Queue) Send(msg Message) bool {
	tail := q.tail.Load()
	head := q.head.Load()
	next := (tail + 1) % q.depth()
	if next == head%q.depth() {
		return false
	}
	q.messages[tail%q.depth()] = msg
	q.tail.Store(tail + 1)
	return true
}

// Receive dequeues the oldest message. It reports false if the queue is
// empty.
func (q *Queue) Receive() (Message, bool) {
	head := q.head.Load()
	tail := q.tail.Load()
	if head == tail {
		return Message{}, false
	}
	msg := q.messages[head%q.depth()]
	q.head.Store(head + 1)
	return msg, true
}
