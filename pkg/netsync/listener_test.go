package netsync

var _ Listener = NullListener{}
var _ Listener = (*recordingListener)(nil)

type recordingListener struct {
	overruns, underruns, dequeues int
	resyncs                       []uint16
}

func (l *recordingListener) OnOverrun(int) { l.overruns++ }

func (l *recordingListener) OnUnderrun() { l.underruns++ }

func (l *recordingListener) OnDequeue(int) { l.dequeues++ }

func (l *recordingListener) OnResync(next uint16) { l.resyncs = append(l.resyncs, next) }
