// Package main is the entry point for the teamplan API server.
package main

import (
	"fmt"
	"os"
)

func main() {
	app, err := newApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	if err := app.run(); err != nil {
		app.logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
