package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PrintList writes the primes as a single list line.
func PrintList(w io.Writer, primes []uint64) error {
	_, err := fmt.Fprintln(w, FormatList(primes))
	return err
}

// PrintSummary writes a one-line processing summary.
// The program name is set in bold when w is a terminal.
func PrintSummary(w io.Writer, r Report) {
	bold, reset := "", ""
	if isTerminal(w) {
		bold = "\033[1m"
		reset = "\033[0m"
	}

	workers := "workers"
	if r.Workers == 1 {
		workers = "worker"
	}
	fmt.Fprintf(w, "%sparprimes%s – %s primes in %s found in %.2f s (%d %s)\n",
		bold, reset, formatIntWithCommas(len(r.Primes)), r.Requested,
		r.Elapsed.Seconds(), r.Workers, workers)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
