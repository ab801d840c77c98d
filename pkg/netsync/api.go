package netsync

import (
	"time"

	"github.com/pion/rtp"
)

type Queue interface {
	Push(packet *rtp.Packet, now time.Time)
	Take(now time.Time) (*rtp.Packet, bool)
}

type QueueFactory interface {
	CreateQueue() Queue
}

type Factory struct {
	config *Config
}

func NewFactory(config *Config) *Factory {
	if config == nil {
		config = NewConfig()
	}
	return &Factory{config: config}
}

func (f *Factory) CreateQueue() Queue {
	return NewPacketQueue(f.config)
}
