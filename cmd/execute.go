// Package cmd implements the command-line interface for parprimes.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/parprimes/parprimes/config"
	"github.com/parprimes/parprimes/output"
	"github.com/parprimes/parprimes/scan"

	"github.com/spf13/cobra"
)

// options are the settings of one run once flags and config file are merged.
type options struct {
	threads         int
	threadsExplicit bool
	format          string
	output          string
	stats           bool
}

// executeScan is the main execution function for the root command.
// Every input is validated before the scan starts:
//  1. Merge flags with the optional config file
//  2. Parse and validate START and STOP
//  3. Size the worker pool
//  4. Scan, then write the report in the requested format
func executeScan(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	start, err := parseBound("START", args[0])
	if err != nil {
		return err
	}
	stop, err := parseBound("STOP", args[1])
	if err != nil {
		return err
	}
	requested, err := scan.NewRange(start, stop)
	if err != nil {
		return err
	}

	scanner, err := scan.New(determineWorkerCount(opts.threads, opts.threadsExplicit, requested))
	if err != nil {
		return err
	}

	startTime := time.Now()
	primes, err := scanner.Primes(requested.Start, requested.Stop)
	if err != nil {
		return err
	}
	report := output.NewReport(requested, scanner.Workers(), primes, time.Since(startTime))

	if err := writeOutput(cmd.OutOrStdout(), opts, report); err != nil {
		return err
	}

	if opts.stats {
		output.PrintSummary(cmd.ErrOrStderr(), report)
	}
	return nil
}

// resolveOptions applies the precedence flag > config file > default.
func resolveOptions() (options, error) {
	var cfg config.FileConfig
	if configFile != "" {
		loaded, err := config.LoadFile(configFile)
		if err != nil {
			return options{}, err
		}
		cfg = *loaded
	}

	if jsonFlag && mdFlag {
		return options{}, errors.New("--json and --md cannot be used together")
	}

	opts := options{
		output: cfg.Output,
		stats:  statsFlag || cfg.Stats,
	}

	switch {
	case threads.set:
		opts.threads, opts.threadsExplicit = threads.n, true
	case cfg.Threads > 0:
		opts.threads, opts.threadsExplicit = cfg.Threads, true
	}

	switch {
	case jsonFlag:
		opts.format = config.FormatJSON
	case mdFlag:
		opts.format = config.FormatMarkdown
	default:
		format, err := config.ParseFormat(cfg.Format)
		if err != nil {
			return options{}, err
		}
		opts.format = format
	}

	if outputFile != "" {
		opts.output = outputFile
	}
	return opts, nil
}

// writeOutput writes the report to stdout, or to the --output file.
func writeOutput(stdout io.Writer, opts options, report output.Report) (err error) {
	w := stdout
	if opts.output != "" {
		f, cerr := output.Create(opts.output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close %s: %w", opts.output, cerr)
			}
			if err == nil {
				log.Printf("[INFO] Report written to %s", opts.output)
			}
		}()
		w = f
	}

	switch opts.format {
	case config.FormatJSON:
		return output.ExportJSON(w, report)
	case config.FormatMarkdown:
		return output.ExportMarkdown(w, report)
	default:
		return output.PrintList(w, report.Primes)
	}
}
