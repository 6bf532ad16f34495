// Package prime decides primality of a single unsigned integer by trial division.
package prime

import "math/bits"

// IsPrime reports whether n is prime.
//
// Every candidate factor x in [2, n) is tried until x*x exceeds n. The square is
// computed on 128 bits, so a factor whose square does not fit in a uint64 ends the
// scan instead of wrapping around.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for x := uint64(2); x < n && withinBound(x, n); x++ {
		if n%x == 0 {
			return false
		}
	}
	return true
}

// withinBound reports whether x*x <= n without overflowing.
func withinBound(x, n uint64) bool {
	hi, lo := bits.Mul64(x, x)
	return hi == 0 && lo <= n
}
