// Package output renders scan results as text, JSON or markdown.
package output

import (
	"strconv"
	"strings"
	"time"

	"github.com/parprimes/parprimes/scan"
)

// Report gathers everything known about one scan.
type Report struct {
	// Requested is the range as given by the caller.
	Requested scan.Range
	// Effective is the range actually scanned, lower bound clamped to 2.
	Effective scan.Range
	Workers   int
	Primes    []uint64
	Elapsed   time.Duration
}

// NewReport builds a Report for a scan of requested.
func NewReport(requested scan.Range, workers int, primes []uint64, elapsed time.Duration) Report {
	effective, _ := requested.Normalize()
	return Report{
		Requested: requested,
		Effective: effective,
		Workers:   workers,
		Primes:    primes,
		Elapsed:   elapsed,
	}
}

// FormatList renders primes as a bracketed, comma separated list: [2, 3, 5, 7].
func FormatList(primes []uint64) string {
	var b strings.Builder
	b.Grow(2 + len(primes)*8)
	b.WriteByte('[')
	var buf [20]byte
	for i, p := range primes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.Write(strconv.AppendUint(buf[:0], p, 10))
	}
	b.WriteByte(']')
	return b.String()
}

// formatElapsed renders d as "123ms" below one second and "1.23s" above.
func formatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return strconv.FormatInt(ms, 10) + "ms"
	}
	return strconv.FormatFloat(d.Seconds(), 'f', 2, 64) + "s"
}

// formatIntWithCommas groups digits by thousands: 1234567 -> 1,234,567.
func formatIntWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	res := strings.Join(parts, ",")
	if neg {
		res = "-" + res
	}
	return res
}
