package main

import (
	"context"
	"os"

	"github.com/anoopvshukla/wabot-launch/internal/cmd"
	"github.com/anoopvshukla/wabot-launch/internal/config"
	"github.com/anoopvshukla/wabot-launch/internal/logging"
	"github.com/anoopvshukla/wabot-launch/internal/ui"
)

var version = "dev"

func main() {
	ctx := context.Background()

	ui.InitColors()

	// Resolve configuration
	cfg := config.Load()

	// Initialize logger
	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Logging.LogFile,
	})

	// The launched binary inherits PATH through the environment. Applied
	// exactly once, before any resolution check.
	os.Setenv("PATH", cfg.SearchPath)

	// Execute root command
	rootCmd := cmd.NewRootCmd(cfg, log, version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.PrintError("launch failed: %v", err)
		os.Exit(1)
	}
}
