package netsync

import (
	"sync"
	"time"

	"github.com/pion/rtp"
)

var _ Queue = (*PacketQueue)(nil)

// PacketQueue feeds RTP-framed client inputs into an InputQueue. It sits on
// the transport boundary, so unlike the core queues it is safe to Push from
// the receive goroutine while the simulation loop calls Take.
type PacketQueue struct {
	sync.Mutex

	queue  *InputQueue[*rtp.Packet]
	ssrc   uint32
	last   uint16
	marked bool

	config *Config
}

func NewPacketQueue(config *Config) *PacketQueue {
	if config == nil {
		config = NewConfig()
	}
	return &PacketQueue{config: config}
}

func (p *PacketQueue) init(ssrc uint32) {
	p.queue = NewInputQueue[*rtp.Packet](nil)
	p.ssrc = ssrc
	p.marked = false
}

func (p *PacketQueue) Push(packet *rtp.Packet, now time.Time) {
	p.Lock()
	defer p.Unlock()

	if p.queue == nil || p.ssrc != packet.SSRC {
		p.init(packet.SSRC)
	}

	if p.marked && !seqGreaterThan(packet.SequenceNumber, p.last) {
		// Reordered or duplicated on the wire; consuming it now would replay
		// an input the simulation already stepped past.
		return
	}
	p.last = packet.SequenceNumber
	p.marked = true

	p.queue.Push(p.config.MaxQueuedInputs, packet, now)
}

func (p *PacketQueue) Take(now time.Time) (*rtp.Packet, bool) {
	p.Lock()
	defer p.Unlock()

	if p.queue == nil {
		return nil, false
	}

	return p.queue.Take(now, p.config.InputDelay)
}

func (p *PacketQueue) Len() int {
	p.Lock()
	defer p.Unlock()

	if p.queue == nil {
		return 0
	}

	return p.queue.Len()
}
