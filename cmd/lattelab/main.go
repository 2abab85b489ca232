package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Run completed with every benchmark passing
	ExitDegradedRun = 1 // Run completed but one or more benchmarks failed
	ExitError       = 2 // Configuration or runtime error
)

// DegradedRunError indicates that a simulation completed successfully,
// but one or more benchmarks classified as failed.
type DegradedRunError struct {
	Message string
}

func (e *DegradedRunError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var degradedErr *DegradedRunError
		if errors.As(err, &degradedErr) {
			os.Exit(ExitDegradedRun)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
