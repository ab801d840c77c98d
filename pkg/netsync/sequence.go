package netsync

import "math"

const halfRing = uint16(math.MaxUint16/2) + 1

func seqLTE(a, b uint16) bool {
	return a == b || seqGreaterThan(b, a)
}

func seqLessThan(a, b uint16) bool {
	return seqGreaterThan(b, a)
}

func seqGreaterThan(a, b uint16) bool {
	return ((a > b) && (a-b <= halfRing)) || ((a < b) && (b-a > halfRing))
}

// seqAhead classifies a wrapping distance next-seq: at or past the ring
// midpoint, seq is newer than anything recorded.
func seqAhead(diff uint16) bool {
	return diff >= halfRing
}
