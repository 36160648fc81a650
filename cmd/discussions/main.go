// ABOUTME: Entry point for the discussions command line tool
// ABOUTME: Looks up related discussions from the terminal or runs the popup

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
