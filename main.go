// Package main is the entry point for the parprimes application.
// parprimes prints the prime numbers of an inclusive range, testing the
// candidates by trial division on parallel workers.
package main

import (
	"log"
	"os"
	"runtime/pprof"

	"github.com/parprimes/parprimes/cmd"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {

	// CPU profiling
	if cpuProfile := os.Getenv("CPUPROFILE"); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	// Memory profiling
	if memProfile := os.Getenv("MEMPROFILE"); memProfile != "" {
		f, err := os.Create(memProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// All command-line parsing, flag handling, and execution logic
	// is delegated to the cmd package.
	cmd.Execute(version, commit, date)
}
