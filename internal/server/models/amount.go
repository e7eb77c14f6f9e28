package models

import (
	"math"
	"math/bits"
)

const basisPointsScale = 10_000

// SatAdd returns a+b, clamped at math.MaxUint64.
func SatAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// SatSub returns a-b, clamped at zero.
func SatSub(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}

// SatMul returns a*b, clamped at math.MaxUint64.
func SatMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// Fee returns amount*bps/10000 rounded to nearest, ties away from zero.
// bps is clamped to 10000. The product is formed in 128 bits, so no input
// overflows.
func Fee(amount uint64, bps uint64) uint64 {
	if bps > basisPointsScale {
		bps = basisPointsScale
	}
	hi, lo := bits.Mul64(amount, bps)
	q, r := bits.Div64(hi, lo, basisPointsScale)
	if r*2 >= basisPointsScale {
		q++
	}
	return q
}
