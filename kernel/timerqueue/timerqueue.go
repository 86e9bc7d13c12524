// Package timerqueue implements a relative-delta sorted event list. No
// other package imports it: the per-architecture TickTimer counters and the
// bounded keyboard-controller poll in the amd64 power code run on their own.
package timerqueue

// Callback is invoked when a scheduled event's time arrives.
type Callback func(arg int)

// owner identifies whatever the event belongs to (a task ID, a device
// address, a bounded-wait handle); the queue treats it opaquely and only
// uses it to match CancelEvent calls.
type event struct {
	ticks int
	owner any
	cb    Callback
	arg   int
	prev  *event
	next  *event
}

// Queue is a singly-rooted doubly-linked list of events ordered by their
// time-delta from "now", the same structure the teacher's device event
// scheduler uses, generalized from a per-device callback to an opaque
// owner.
type Queue struct {
	head *event
	tail *event
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{}
}

// AddEvent schedules cb to run after the given number of ticks. A ticks of
// zero runs cb immediately, synchronously, before AddEvent returns.
func (q *Queue) AddEvent(owner any, cb Callback, ticks int, arg int) {
	if ticks == 0 {
		cb(arg)
		return
	}

	ev := &event{owner: owner, cb: cb, ticks: ticks, arg: arg}

	cur := q.head
	if cur == nil {
		q.head = ev
		q.tail = ev
		return
	}

	for cur != nil {
		if ev.ticks <= cur.ticks {
			cur.ticks -= ev.ticks
			ev.prev = cur.prev
			ev.next = cur
			cur.prev = ev
			if ev.prev != nil {
				ev.prev.next = ev
			} else {
				q.head = ev
			}
			return
		}
		ev.ticks -= cur.ticks
		cur = cur.next
	}

	ev.prev = q.tail
	q.tail.next = ev
	q.tail = ev
}

// CancelEvent removes the first scheduled event matching owner and arg, if
// any. cb is not compared.
func (q *Queue) CancelEvent(owner any, cb Callback, arg int) {
	cur := q.head
	for cur != nil {
		if cur.owner == owner && cur.arg == arg {
			next := cur.next
			if next != nil {
				next.ticks += cur.ticks
				next.prev = cur.prev
			} else {
				q.tail = cur.prev
			}
			if cur.prev != nil {
				cur.prev.next = cur.next
			} else {
				q.head = cur.next
			}
			return
		}
		cur = cur.next
	}
}

// Advance moves the simulated clock forward by t ticks, firing every
// event whose delta has elapsed.
func (q *Queue) Advance(t int) {
	cur := q.head
	if cur == nil {
		return
	}
	cur.ticks -= t
	for cur != nil && cur.ticks <= 0 {
		over := cur.ticks
		cur.cb(cur.arg)
		q.head = cur.next
		cur = q.head
		if cur != nil {
			cur.prev = nil
			cur.ticks += over
		} else {
			q.tail = nil
		}
	}
}
