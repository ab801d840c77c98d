package netsync

import (
	"github.com/huandu/skiplist"
	"github.com/samber/lo"
)

// PredictionQueue tracks inputs that were transmitted to the server but not
// yet incorporated into an authoritative update.
//
// Each input is associated with a wrapping sequence number identifying the
// simulation step it was recorded for. Because they wrap, sequence numbers
// may be derived from a wider step counter by taking its two least
// significant bytes.
type PredictionQueue[T any] struct {
	list *skiplist.SkipList

	step    uint64
	nextSeq uint16

	listener Listener
}

// NewPredictionQueue seeds the queue with the sequence number the session
// assigned to the next outgoing input. A nil listener disables notifications.
func NewPredictionQueue[T any](nextSequenceNumber uint16, listener Listener) *PredictionQueue[T] {
	if listener == nil {
		listener = NullListener{}
	}
	return &PredictionQueue[T]{
		list:     skiplist.New(skiplist.Uint64),
		nextSeq:  nextSequenceNumber,
		listener: listener,
	}
}

// NextSequenceNumber returns the sequence number that will obsolete the next
// input passed to Record.
func (q *PredictionQueue[T]) NextSequenceNumber() uint16 {
	return q.nextSeq
}

// Record tracks an input that is being sent to the server. Must be called
// exactly once per simulation step advanced locally.
func (q *PredictionQueue[T]) Record(input T) {
	q.list.Set(q.step, input)
	q.step++
	q.nextSeq++
}

// Reconcile drops inputs transmitted at or before sequenceNumber. Future
// inputs are associated with sequence numbers greater than sequenceNumber,
// so the queue re-synchronizes after falling behind. Acknowledgements may
// arrive duplicated or out of order; pruning is monotonic and never restores
// an entry.
func (q *PredictionQueue[T]) Reconcile(sequenceNumber uint16) {
	diff := q.nextSeq - sequenceNumber
	if seqAhead(diff) {
		// sequenceNumber is newer than anything recorded.
		q.nextSeq = sequenceNumber + 1
		q.list.Init()
		q.listener.OnResync(q.nextSeq)
		return
	}

	// Inputs recorded strictly after sequenceNumber survive; diff-1 wraps to
	// the full ring when diff is zero, keeping everything.
	keep := lo.Min([]int{q.list.Len(), int(diff - 1)})
	removeStepsBelow(q.list, q.step-uint64(keep))
}

// Iter returns a fresh iterator over in-flight inputs in the order they were
// recorded. The queue must not be mutated while iterating.
func (q *PredictionQueue[T]) Iter() *InFlightIter[T] {
	return &InFlightIter[T]{el: q.list.Front()}
}

// Inputs snapshots the in-flight inputs, oldest first.
func (q *PredictionQueue[T]) Inputs() []T {
	inputs := make([]T, 0, q.list.Len())
	for el := q.list.Front(); el != nil; el = el.Next() {
		inputs = append(inputs, el.Value.(T))
	}
	return inputs
}

func (q *PredictionQueue[T]) Len() int {
	return q.list.Len()
}

type InFlightIter[T any] struct {
	el *skiplist.Element
}

func (it *InFlightIter[T]) Next() (T, bool) {
	if it.el == nil {
		var zero T
		return zero, false
	}
	input := it.el.Value.(T)
	it.el = it.el.Next()
	return input, true
}

func removeStepsBelow(list *skiplist.SkipList, step uint64) {
	for {
		front := list.Front()
		if front == nil || front.Key().(uint64) >= step {
			break
		}
		list.RemoveFront()
	}
}
