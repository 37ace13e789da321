package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/vk/targetplan/internal/app"
	"github.com/vk/targetplan/internal/cli"
	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/hcl"
	"github.com/vk/targetplan/internal/structured"
)

// main is the entrypoint for the targetplan application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// A missing .env file is fine; it only seeds flag defaults.
	_ = godotenv.Load()

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Plan manifests are written to outW, logs and usage to errW.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Registering after the registry is sealed panics; surface any such
	// programmer error as a clean start-up failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := config.MultiLoader{hcl.NewLoader(), structured.NewLoader()}
	targetApp, err := app.NewApp(outW, errW, appConfig, loader)
	if err != nil {
		return err
	}

	return targetApp.Run(context.Background())
}
