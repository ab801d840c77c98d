package netsync

import (
	"math"
	"testing"

	"github.com/huandu/go-assert"
)

func Test_ringOrdering(t *testing.T) {
	assert.Assert(t, seqGreaterThan(1, 0))
	assert.Assert(t, !seqGreaterThan(0, 1))
	assert.Assert(t, !seqGreaterThan(5, 5))

	// Ordering holds across the wrap boundary.
	assert.Assert(t, seqGreaterThan(0, math.MaxUint16))
	assert.Assert(t, seqLessThan(math.MaxUint16, 0))

	assert.Assert(t, seqLTE(5, 5))
	assert.Assert(t, seqLTE(math.MaxUint16, 1))
}

func Test_ringMidpoint(t *testing.T) {
	assert.Assert(t, !seqAhead(halfRing-1))
	assert.Assert(t, seqAhead(halfRing))
	assert.Assert(t, seqAhead(math.MaxUint16))
}
