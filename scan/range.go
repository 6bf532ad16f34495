// Package scan finds the primes of an inclusive range on a bounded set of workers.
package scan

import (
	"errors"
	"fmt"
	"math"
)

// smallestPrime is the clamp applied to every lower bound.
const smallestPrime = 2

// ErrInvalidRange is matched by every *RangeError.
var ErrInvalidRange = errors.New("start cannot be greater than stop")

// RangeError reports a range whose stop is below its start.
type RangeError struct {
	Start uint64
	Stop  uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d]: %v", e.Start, e.Stop, ErrInvalidRange)
}

// Is makes errors.Is(err, ErrInvalidRange) hold for any *RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// Range is an inclusive span [Start, Stop] of candidates.
type Range struct {
	Start uint64
	Stop  uint64
}

// NewRange validates that start <= stop.
func NewRange(start, stop uint64) (Range, error) {
	if stop < start {
		return Range{}, &RangeError{Start: start, Stop: stop}
	}
	return Range{Start: start, Stop: stop}, nil
}

// Normalize raises the lower bound to 2, below which there are no primes.
// The boolean is false when nothing is left to scan.
func (r Range) Normalize() (Range, bool) {
	if r.Start < smallestPrime {
		r.Start = smallestPrime
	}
	return r, r.Start <= r.Stop
}

// Len returns the number of candidates in r.
// It wraps to 0 for the full [0, MaxUint64] range; normalized ranges never do.
func (r Range) Len() uint64 {
	return r.Stop - r.Start + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.Stop)
}

// MaxPartitions bounds the number of sub-ranges Split returns.
const MaxPartitions = 1 << 16

// Split cuts r into at most min(n, MaxPartitions) contiguous sub-ranges in
// ascending order. Sizes differ by at most one. An inverted range yields nil.
func (r Range) Split(n int) []Range {
	if r.Start > r.Stop {
		return nil
	}
	n = max(min(n, MaxPartitions), 1)

	count := r.Len()
	if count == 0 {
		// [0, MaxUint64] has 2^64 candidates; split all but the last and let
		// the last part absorb it.
		parts := Range{Start: 0, Stop: math.MaxUint64 - 1}.Split(n)
		parts[len(parts)-1].Stop = math.MaxUint64
		return parts
	}
	if uint64(n) > count {
		n = int(count)
	}

	size := count / uint64(n)
	rem := count % uint64(n)

	parts := make([]Range, 0, n)
	lo := r.Start
	for i := 0; i < n; i++ {
		sz := size
		if uint64(i) < rem {
			sz++
		}
		hi := lo + sz - 1
		parts = append(parts, Range{Start: lo, Stop: hi})
		// wraps to 0 after the last part when hi == MaxUint64; never read
		lo = hi + 1
	}
	return parts
}
