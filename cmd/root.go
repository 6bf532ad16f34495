// Package cmd implements the command-line interface for parprimes.
// It uses the Cobra library to handle commands, flags, and execution.
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// Version information (passed from main)
var (
	version string
	commit  string
	date    string
)

// Flag variables for command-line options.
// These are package-level variables as required by Cobra's flag binding.
var (
	threads    threadsValue // -N, --Nthreads: worker count override
	configFile string       // --config: YAML or JSON defaults file

	// Output format flags
	jsonFlag bool // --json: Export the report in JSON format
	mdFlag   bool // --md: Export the report in Markdown format

	outputFile string // --output: Write the report to a file instead of stdout
	statsFlag  bool   // --stats: Print a processing summary on stderr
)

// rootCmd is the main command for the parprimes CLI.
var rootCmd = &cobra.Command{
	Use:   "parprimes START STOP",
	Short: "Prints the prime numbers between START and STOP (inclusive)",
	Long: `parprimes prints the list of prime numbers between START and STOP,
both included, testing candidates by trial division on parallel workers.

The result is printed as a single list, e.g. [2, 3, 5, 7]. Use --json or --md
for a full report, and --output to write it to a file (.gz and .zst files are
compressed).`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          executeScan,
}

// Execute runs the root command.
// This is called by main.go to start the CLI application.
func Execute(v, c, d string) {
	setVersion(v, c, d)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func setVersion(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// init initializes all command-line flags.
func init() {
	rootCmd.Flags().VarP(&threads, "Nthreads", "N",
		"Sets the number of threads (`NTHREADS`). Defaults to the number of CPU cores")
	rootCmd.Flags().StringVarP(&configFile, "config", "C", "",
		"Read defaults from a YAML or JSON configuration file")

	// Output format flags
	rootCmd.Flags().BoolVarP(&jsonFlag, "json", "J", false,
		"Export the report in JSON format")
	rootCmd.Flags().BoolVarP(&mdFlag, "md", "", false,
		"Export the report in Markdown format")

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Write the report to a file (.gz and .zst are compressed)")
	rootCmd.Flags().BoolVarP(&statsFlag, "stats", "s", false,
		"Print a processing summary on stderr")
}
