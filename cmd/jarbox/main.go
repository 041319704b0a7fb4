// Where: cmd/jarbox/main.go
// What: CLI entrypoint.
// Why: Execute jarbox commands with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/poruru-code/jarbox/internal/command"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(command.Run(os.Args[1:], deps))
}
