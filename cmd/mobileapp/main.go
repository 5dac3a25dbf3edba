// Package main provides the entry point for the mobileapp CLI.
package main

import (
	"context"
	"os"
	"time"

	"github.com/agentstation/mobileapp/cmd/mobileapp/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancelled on SIGINT/SIGTERM so the menu can stop at the next prompt.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	runErr := application.Execute(ctx, os.Args[1:])

	// The signal context may already be cancelled; shut down on a fresh one.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if shutdownErr := application.Shutdown(shutdownCtx); shutdownErr != nil {
		application.Logger().Error().Err(shutdownErr).Msg("Shutdown error")
	}

	app.ExitOnError(runErr)
}
