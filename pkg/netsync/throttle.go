package netsync

import (
	"time"

	"github.com/samber/lo"
)

// Throttle computes the amount of time to advance a simulation after
// realTime has passed, given bufferRemaining simulation time until received
// data is exhausted.
//
// If bufferRemaining is between minLatency and minLatency+hysteresis,
// realTime is returned exactly. Otherwise the returned time is smoothly
// scaled to gradually bring it back into that window without
// discontinuities. Never returns a value greater than bufferRemaining.
//
//   - realTime: amount of wall-clock time passed.
//   - bufferRemaining: amount the simulation can progress without running out
//     of data. Grows as data is received from the server, shrinks as
//     simulation time progresses. The caller owns this accounting.
//   - minLatency: when bufferRemaining is below this, simulation time slows.
//     Smaller values reduce latency under ideal conditions at the cost of
//     more abrupt corrections for latency jitter and a lagging server.
//   - hysteresis: width of the interval within which time flows normally.
//     Should match the expected interval between server updates so time flows
//     uniformly under ideal conditions.
func Throttle(realTime, bufferRemaining, minLatency, hysteresis time.Duration) time.Duration {
	var scaled time.Duration
	if bufferRemaining < minLatency {
		// About to run out of data; slow down. Clamp before use so a
		// minLatency too close to zero cannot yield a NaN scale.
		deficit := minLatency - bufferRemaining
		scale := 1 - lo.Clamp(float64(deficit)/float64(minLatency), 0, 1)
		scaled = time.Duration(float64(realTime) * scale)
	} else if bufferRemaining > minLatency+hysteresis {
		// Fallen too far behind; speed up. 1 second behind = 2x speed.
		// The buffer is known to be at least excess ahead but not necessarily
		// further; overshooting it would underrun later.
		excess := bufferRemaining - (minLatency + hysteresis)
		catchUp := time.Duration(float64(realTime) * excess.Seconds())
		scaled = realTime + lo.Min([]time.Duration{catchUp, excess})
	} else {
		scaled = realTime
	}

	// A large realTime might overshoot the entire buffer.
	return lo.Min([]time.Duration{scaled, bufferRemaining})
}
