package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReportJSON is the JSON layout of a Report.
type ReportJSON struct {
	Start          uint64   `json:"start"`
	Stop           uint64   `json:"stop"`
	EffectiveStart uint64   `json:"effective_start"`
	Workers        int      `json:"workers"`
	Count          int      `json:"count"`
	Primes         []uint64 `json:"primes"`
	Elapsed        string   `json:"elapsed"`
}

func convertReport(r Report) ReportJSON {
	primes := r.Primes
	if primes == nil {
		primes = []uint64{}
	}
	return ReportJSON{
		Start:          r.Requested.Start,
		Stop:           r.Requested.Stop,
		EffectiveStart: r.Effective.Start,
		Workers:        r.Workers,
		Count:          len(primes),
		Primes:         primes,
		Elapsed:        formatElapsed(r.Elapsed),
	}
}

// ExportJSON writes r as indented JSON.
func ExportJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(convertReport(r)); err != nil {
		return fmt.Errorf("failed to encode report to JSON: %w", err)
	}
	return nil
}

// ExportJSONString returns r as indented JSON.
func ExportJSONString(r Report) (string, error) {
	var b strings.Builder
	if err := ExportJSON(&b, r); err != nil {
		return "", err
	}
	return b.String(), nil
}
