// ./main.go
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/xkilldash9x/agentsmith/cmd"
)

// main is the entry point for the agentsmith CLI.
func main() {
	// Set up a context that listens for interrupt signals (SIGINT, SIGTERM)
	// so a run can be aborted cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Execute handles all command-line parsing, configuration, and
	// execution, and maps any failure to exit code 1.
	cmd.Execute(ctx)
}
