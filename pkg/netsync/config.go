package netsync

import "time"

type Config struct {
	MaxQueuedInputs int           // inputs held before the oldest is evicted
	InputDelay      time.Duration // settle delay for the first input of a run
	MinLatency      time.Duration // below this much buffered data, time slows
	Hysteresis      time.Duration // width of the no-correction window
}

func NewConfig() *Config {
	return &Config{
		MaxQueuedInputs: 256,
		InputDelay:      50 * time.Millisecond,
		MinLatency:      50 * time.Millisecond,
		Hysteresis:      200 * time.Millisecond,
	}
}
