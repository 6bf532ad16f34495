// Package cmd implements the command-line interface for parprimes.
package cmd

import (
	"log"
	"runtime"

	"github.com/parprimes/parprimes/scan"
)

// determineWorkerCount calculates the number of parallel workers for a scan.
//
// Strategy:
//   - Explicit request (flag or config file): used as is, scan.New rejects values below 1
//   - Default: one worker per CPU core
//   - Never create more default workers than candidates to test
func determineWorkerCount(requested int, explicit bool, r scan.Range) int {
	candidates := uint64(0)
	if nr, ok := r.Normalize(); ok {
		candidates = nr.Len()
	}

	if explicit {
		if requested > 1 && uint64(requested) > candidates {
			log.Printf("[WARN] %d threads requested for %d candidates, some will stay idle",
				requested, candidates)
		}
		return requested
	}

	workers := runtime.NumCPU()
	if uint64(workers) > candidates {
		workers = int(max(candidates, 1))
	}
	return workers
}
