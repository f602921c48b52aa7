package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// House edge applied to the crash point distribution. With edge e, the
// drawn point is floor(100*(1-e)/(1-r)) for uniform r, so the expected
// return of an always-cash-out strategy stays below 1.
const crashHouseEdge = 0.04

// drawCrashPoint maps a uniform r in [0,1) to a crash point in hundredths
// of 1x, clamped to the configured [min, max] band.
func drawCrashPoint(r float64, min, max int) int {
	if r < 0 {
		r = 0
	}
	if r >= 1 {
		return max
	}
	point := int(100 * (1 - crashHouseEdge) / (1 - r))
	if point < min {
		return min
	}
	if point > max {
		return max
	}
	return point
}

// multiplierAt returns the live crash multiplier after elapsed time: the
// curve climbs 0.01x per 100ms starting from 1.00x.
func multiplierAt(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	return 100 + int(elapsed.Milliseconds()/100)
}

// secureFloat draws a uniform float64 in [0,1) from crypto/rand.
func secureFloat() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// secureIntn draws a uniform int in [0,n) from crypto/rand.
func secureIntn(n int) int {
	return int(secureFloat() * float64(n))
}
