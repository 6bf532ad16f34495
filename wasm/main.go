//go:build js && wasm

// Package main provides the WASM entry point for parprimes.
// It exposes the scanner and the JSON report to JavaScript.
package main

import (
	"math"
	"strconv"
	"syscall/js"
	"time"

	"github.com/parprimes/parprimes/output"
	"github.com/parprimes/parprimes/scan"
)

const version = "0.1.0-wasm"

var perf = js.Global().Get("performance")

func now() float64 {
	return perf.Call("now").Float()
}

func main() {
	js.Global().Set("primesScan", js.FuncOf(scanRange))
	js.Global().Set("primesVersion", js.FuncOf(getVersion))
	select {}
}

func getVersion(this js.Value, args []js.Value) interface{} {
	return version
}

// argUint reads a bound passed either as a decimal string or as a JS number.
// Strings are the only way to pass values above 2^53 without losing precision.
func argUint(v js.Value, name string) (uint64, string) {
	s := v.String()
	if v.Type() == js.TypeNumber {
		s = strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, name + " must be an integer, you entered '" + s + "'"
	}
	return n, ""
}

// scannerFor reads the optional thread count the same way as the bounds:
// decimal strings are accepted, anything else that is not a whole number is an error.
func scannerFor(v js.Value) (*scan.Scanner, string) {
	n, msg := argUint(v, "threads")
	if msg != "" {
		return nil, msg
	}
	if n > math.MaxInt32 {
		return nil, "threads is out of range, you entered '" + strconv.FormatUint(n, 10) + "'"
	}
	s, err := scan.New(int(n))
	if err != nil {
		return nil, err.Error()
	}
	return s, ""
}

func errorJSON(msg string) string {
	return `{"error": ` + strconv.Quote(msg) + `}`
}

// scanRange is primesScan(start, stop[, threads]). It returns the JSON report, or
// an object with a single error field.
func scanRange(this js.Value, args []js.Value) interface{} {
	t0 := now()

	if len(args) < 2 {
		return errorJSON("start and stop are required")
	}

	start, msg := argUint(args[0], "start")
	if msg != "" {
		return errorJSON(msg)
	}
	stop, msg := argUint(args[1], "stop")
	if msg != "" {
		return errorJSON(msg)
	}

	scanner := scan.Default()
	if len(args) >= 3 && !args[2].IsNull() && !args[2].IsUndefined() {
		s, msg := scannerFor(args[2])
		if msg != "" {
			return errorJSON(msg)
		}
		scanner = s
	}

	requested, err := scan.NewRange(start, stop)
	if err != nil {
		return errorJSON(err.Error())
	}
	primes, err := scanner.Primes(start, stop)
	if err != nil {
		return errorJSON(err.Error())
	}

	elapsed := time.Duration((now() - t0) * float64(time.Millisecond))
	report := output.NewReport(requested, scanner.Workers(), primes, elapsed)

	jsonStr, err := output.ExportJSONString(report)
	if err != nil {
		return errorJSON("JSON export error: " + err.Error())
	}
	return jsonStr
}
