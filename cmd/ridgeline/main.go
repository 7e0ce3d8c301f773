// Command ridgeline reports the fewest steps from S to E on elevation maps
// where each step may climb at most one letter.
//
// Usage:
//
//	ridgeline solve [file...]      # "-" or no file reads stdin
//	ridgeline version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ridgeline:", err)
		os.Exit(1)
	}
}
