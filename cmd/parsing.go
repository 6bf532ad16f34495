// Package cmd implements the command-line interface for parprimes.
package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// ParseError reports a command-line value that is not a valid integer.
type ParseError struct {
	Name  string // START, STOP or NTHREADS
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, strconv.ErrRange) {
		return fmt.Sprintf("%s is out of range, you entered '%s'", e.Name, e.Input)
	}
	return fmt.Sprintf("%s must be an integer, you entered '%s'", e.Name, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseBound parses a START or STOP argument as an unsigned 64-bit integer.
func parseBound(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Name: name, Input: s, Err: err}
	}
	return n, nil
}

// threadsValue is the -N flag. It records whether the flag was given so that an
// explicit value, even an invalid one, takes precedence over the config file.
type threadsValue struct {
	n   int
	set bool
}

var _ pflag.Value = (*threadsValue)(nil)

func (v *threadsValue) String() string {
	if !v.set {
		return ""
	}
	return strconv.Itoa(v.n)
}

func (v *threadsValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return &ParseError{Name: "NTHREADS", Input: s, Err: err}
	}
	v.n = n
	v.set = true
	return nil
}

func (v *threadsValue) Type() string {
	return "int"
}
