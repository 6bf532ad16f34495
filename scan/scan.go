package scan

import (
	"errors"
	"runtime"

	"github.com/parprimes/parprimes/prime"

	"golang.org/x/sync/errgroup"
)

// partitionsPerWorker is the number of contiguous partitions per worker. Testing
// cost grows with the candidate, so partitions outnumber workers.
const partitionsPerWorker = 4

// ErrInvalidWorkers is returned for a worker count below one.
var ErrInvalidWorkers = errors.New("number of threads must be at least 1")

// Scanner tests ranges of candidates on a fixed number of workers.
// A Scanner holds no mutable state and may be shared between goroutines.
// The zero value uses one worker per CPU core.
type Scanner struct {
	workers int
}

// New returns a Scanner running at most workers goroutines per scan.
func New(workers int) (*Scanner, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}
	return &Scanner{workers: workers}, nil
}

// Default returns a Scanner with one worker per CPU core.
func Default() *Scanner {
	return &Scanner{workers: runtime.NumCPU()}
}

// Workers returns the pool size.
func (s *Scanner) Workers() int {
	if s.workers < 1 {
		return runtime.NumCPU()
	}
	return s.workers
}

// Primes returns every prime in [max(start, 2), stop] in ascending order.
// It fails with a *RangeError when stop < start. A range without primes yields an
// empty, non-nil slice.
func (s *Scanner) Primes(start, stop uint64) ([]uint64, error) {
	r, err := NewRange(start, stop)
	if err != nil {
		return nil, err
	}
	r, ok := r.Normalize()
	if !ok {
		return []uint64{}, nil
	}

	workers, parts := plan(s.Workers(), r)
	found := make([][]uint64, len(parts))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, part := range parts {
		g.Go(func() error {
			found[i] = collect(part)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(found), nil
}

// Primes scans [start, stop] with the Default scanner.
func Primes(start, stop uint64) ([]uint64, error) {
	return Default().Primes(start, stop)
}

// plan clamps the worker count to the number of candidates and cuts r into
// partitionsPerWorker parts per worker, at most MaxPartitions in total.
func plan(workers int, r Range) (int, []Range) {
	if count := r.Len(); count != 0 && uint64(workers) > count {
		workers = int(count)
	}
	n := MaxPartitions
	if workers < MaxPartitions/partitionsPerWorker {
		n = workers * partitionsPerWorker
	}
	parts := r.Split(n)
	return min(workers, len(parts)), parts
}

// collect tests every candidate of r sequentially.
func collect(r Range) []uint64 {
	var out []uint64
	for n := r.Start; ; n++ {
		if prime.IsPrime(n) {
			out = append(out, n)
		}
		if n == r.Stop {
			break
		}
	}
	return out
}

// merge concatenates partial results in partition order.
func merge(found [][]uint64) []uint64 {
	total := 0
	for _, f := range found {
		total += len(f)
	}
	out := make([]uint64, 0, total)
	for _, f := range found {
		out = append(out, f...)
	}
	return out
}
