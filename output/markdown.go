package output

import (
	"fmt"
	"io"
	"strings"
)

// ExportMarkdown writes r as a markdown report: a key figures table followed by
// the list of primes in a code block.
func ExportMarkdown(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("## PRIMES\n\n")
	fmt.Fprintf(&b, "This _parprimes_ report lists **%s** primes between %d and %d.\n\n",
		formatIntWithCommas(len(r.Primes)), r.Requested.Start, r.Requested.Stop)

	b.WriteString("|  |  |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| Requested range | %s |\n", r.Requested)
	if r.Effective.Start <= r.Effective.Stop {
		fmt.Fprintf(&b, "| Scanned range | %s |\n", r.Effective)
	} else {
		b.WriteString("| Scanned range | empty |\n")
	}
	fmt.Fprintf(&b, "| Workers | %d |\n", r.Workers)
	fmt.Fprintf(&b, "| Primes found | %s |\n", formatIntWithCommas(len(r.Primes)))
	fmt.Fprintf(&b, "| Elapsed | %s |\n\n", formatElapsed(r.Elapsed))

	b.WriteString("```text\n")
	b.WriteString(FormatList(r.Primes))
	b.WriteString("\n```\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}
