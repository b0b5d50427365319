// Command pure renders and replays the demo application headlessly.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pure/cmd/pure/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
