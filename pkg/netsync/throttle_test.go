package netsync

import (
	"testing"
	"time"

	"github.com/huandu/go-assert"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func Test_throttleSmoke(t *testing.T) {
	// Time proceeds uniformly within the hysteresis window.
	assert.Equal(t, Throttle(ms(10), ms(100), ms(50), ms(200)), ms(10))

	// Slow down to preserve the safety margin.
	assert.Assert(t, Throttle(ms(10), ms(40), ms(50), ms(200)) < ms(10))

	// Speed up when far behind.
	assert.Assert(t, Throttle(ms(10), ms(1000), ms(50), ms(200)) > ms(10))
}

func Test_throttleWindowBoundaries(t *testing.T) {
	// Both window edges flow time exactly; corrections fade in smoothly.
	assert.Equal(t, Throttle(ms(10), ms(50), ms(50), ms(200)), ms(10))
	assert.Equal(t, Throttle(ms(10), ms(250), ms(50), ms(200)), ms(10))
}

func Test_throttlePause(t *testing.T) {
	// A whole-minLatency deficit pauses the simulation entirely.
	assert.Equal(t, Throttle(ms(10), 0, ms(50), ms(200)), time.Duration(0))
}

func Test_throttleZeroMinLatency(t *testing.T) {
	assert.Equal(t, Throttle(ms(10), ms(5), 0, ms(200)), ms(5))
}

func Test_throttleLargeStep(t *testing.T) {
	// Never advance past the data actually available.
	assert.Equal(t, Throttle(ms(1_000_000), ms(40), ms(50), ms(200)), ms(40))
	assert.Equal(t, Throttle(ms(1_000_000), ms(1000), ms(50), ms(200)), ms(1000))
}

func Test_throttleCatchUpCap(t *testing.T) {
	// Catch-up never exceeds the known excess; overshooting would starve the
	// buffer later.
	excess := ms(500)
	got := Throttle(ms(1500), ms(50)+ms(2000)+excess, ms(50), ms(2000))
	assert.Equal(t, got, ms(1500)+excess)
}

func Test_throttleSteadyState(t *testing.T) {
	const (
		minLatency    = 10 * time.Millisecond
		stepInterval  = 33 * time.Millisecond
		frameInterval = 7 * time.Millisecond
	)

	var bufferRemaining, timeInStep time.Duration

	for i := 0; i < 1_000; i++ {
		simTime := Throttle(frameInterval, bufferRemaining, minLatency, stepInterval)

		// Starting ahead, we should never need to catch up.
		assert.Assert(t, simTime <= frameInterval)
		// Guaranteed not to overrun.
		assert.Assert(t, simTime <= bufferRemaining)

		bufferRemaining -= simTime

		// Regular updates from the server.
		timeInStep += frameInterval
		if timeInStep > stepInterval {
			timeInStep -= stepInterval
			bufferRemaining += stepInterval
		}
	}
}
