package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/parprimes/parprimes/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatList(t *testing.T) {
	tests := []struct {
		in   []uint64
		want string
	}{
		{nil, "[]"},
		{[]uint64{}, "[]"},
		{[]uint64{2}, "[2]"},
		{[]uint64{2, 3, 5, 7}, "[2, 3, 5, 7]"},
		{[]uint64{18446744073709551557}, "[18446744073709551557]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatList(tt.in))
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintList(&buf, []uint64{2, 3, 5, 7}))
	assert.Equal(t, "[2, 3, 5, 7]\n", buf.String())
}

func TestNewReport(t *testing.T) {
	r := NewReport(scan.Range{Start: 0, Stop: 7}, 4, []uint64{2, 3, 5, 7}, time.Millisecond)
	assert.Equal(t, scan.Range{Start: 0, Stop: 7}, r.Requested)
	assert.Equal(t, scan.Range{Start: 2, Stop: 7}, r.Effective)
	assert.Equal(t, 4, r.Workers)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, NewReport(scan.Range{Start: 0, Stop: 7}, 1, []uint64{2, 3, 5, 7}, 0))
	assert.Equal(t, "parprimes – 4 primes in [0, 7] found in 0.00 s (1 worker)\n", buf.String())

	buf.Reset()
	PrintSummary(&buf, NewReport(scan.Range{Start: 32, Stop: 36}, 8, nil, 1500*time.Millisecond))
	assert.Equal(t, "parprimes – 0 primes in [32, 36] found in 1.50 s (8 workers)\n", buf.String())
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReport(scan.Range{Start: 0, Stop: 7}, 2, []uint64{2, 3, 5, 7}, 12*time.Millisecond)
	require.NoError(t, ExportJSON(&buf, r))

	var got ReportJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, ReportJSON{
		Start:          0,
		Stop:           7,
		EffectiveStart: 2,
		Workers:        2,
		Count:          4,
		Primes:         []uint64{2, 3, 5, 7},
		Elapsed:        "12ms",
	}, got)
}

func TestExportJSONEmpty(t *testing.T) {
	s, err := ExportJSONString(NewReport(scan.Range{Start: 10, Stop: 10}, 1, nil, 0))
	require.NoError(t, err)
	assert.Contains(t, s, `"primes": []`)
	assert.Contains(t, s, `"count": 0`)
}

func TestExportMarkdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewReport(scan.Range{Start: 0, Stop: 7}, 4, []uint64{2, 3, 5, 7}, 2*time.Second)
	require.NoError(t, ExportMarkdown(&buf, r))

	md := buf.String()
	assert.True(t, strings.HasPrefix(md, "## PRIMES\n"))
	assert.Contains(t, md, "lists **4** primes between 0 and 7")
	assert.Contains(t, md, "| Requested range | [0, 7] |")
	assert.Contains(t, md, "| Scanned range | [2, 7] |")
	assert.Contains(t, md, "| Workers | 4 |")
	assert.Contains(t, md, "| Elapsed | 2.00s |")
	assert.Contains(t, md, "```text\n[2, 3, 5, 7]\n```\n")
}

func TestExportMarkdownEmptyRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportMarkdown(&buf, NewReport(scan.Range{Start: 0, Stop: 1}, 1, nil, 0)))
	assert.Contains(t, buf.String(), "| Scanned range | empty |")
}

func TestFormatIntWithCommas(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4321, "-4,321"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatIntWithCommas(tt.n))
	}
}
