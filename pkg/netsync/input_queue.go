package netsync

import (
	"time"

	"github.com/huandu/skiplist"
)

// InputQueue is a jitter-tolerant queue of inputs received from a client.
//
// Clients produce inputs roughly on a timer, so only the first input of an
// uninterrupted run needs to settle: after waiting out the caller's delay
// once, the queue drains one input per simulation step. When it runs dry the
// run ends and the next input has to settle for the full delay again, which
// re-establishes the margin for error after a hang, clock drift, or a change
// in the network path.
type InputQueue[T any] struct {
	list *skiplist.SkipList

	arrival uint64

	marked bool
	epoch  time.Time

	listener Listener
}

// NewInputQueue returns an empty queue with no run in progress. A nil
// listener disables notifications.
func NewInputQueue[T any](listener Listener) *InputQueue[T] {
	if listener == nil {
		listener = NullListener{}
	}
	return &InputQueue[T]{
		list:     skiplist.New(skiplist.Uint64),
		listener: listener,
	}
}

// Push enqueues an input immediately on receipt. When the queue already
// holds max inputs the oldest is evicted so the newest data wins.
func (q *InputQueue[T]) Push(max int, input T, now time.Time) {
	if q.list.Len() == max {
		// Overrun
		if q.list.RemoveFront() != nil {
			q.listener.OnOverrun(q.list.Len())
		}
	}
	q.list.Set(q.arrival, input)
	q.arrival++
	if !q.marked {
		q.marked = true
		q.epoch = now
	}
}

// Take returns the input for the next simulation step. Inputs may be pushed
// late by at most delay relative to the first input of the current run
// before an underrun occurs.
func (q *InputQueue[T]) Take(now time.Time, delay time.Duration) (T, bool) {
	var zero T

	if !q.marked || now.Sub(q.epoch) < delay {
		// The first input of the run hasn't aged long enough; try again later.
		return zero, false
	}

	front := q.list.Front()
	if front == nil {
		// Underrun; the client may have fallen behind, so the margin for
		// error must be re-established before consumption resumes.
		q.marked = false
		q.listener.OnUnderrun()
		return zero, false
	}

	q.list.RemoveFront()
	q.listener.OnDequeue(q.list.Len())

	return front.Value.(T), true
}

func (q *InputQueue[T]) Len() int {
	return q.list.Len()
}

func (q *InputQueue[T]) IsEmpty() bool {
	return q.list.Len() == 0
}
