package netsync

// Listener observes queue state transitions. Callbacks fire synchronously
// from the call that caused them, on the caller's goroutine.
type Listener interface {
	// OnOverrun fires when a Push evicted the oldest queued input.
	OnOverrun(queued int)
	// OnUnderrun fires when a Take found the queue empty and reset the run.
	OnUnderrun()
	// OnDequeue fires when a Take handed out an input.
	OnDequeue(queued int)
	// OnResync fires when an acknowledgement ahead of everything recorded
	// fast-forwarded the next sequence number.
	OnResync(next uint16)
}

type NullListener struct{}

func (NullListener) OnOverrun(int) {}

func (NullListener) OnUnderrun() {}

func (NullListener) OnDequeue(int) {}

func (NullListener) OnResync(uint16) {}
