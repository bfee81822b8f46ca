// Command trailhead is the command-line client for the trail discovery
// service.
package main

import (
	"fmt"
	"os"

	"github.com/trailhead/trailhead/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
