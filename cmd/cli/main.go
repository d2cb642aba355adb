package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/dagforge/internal/app"
	"github.com/vk/dagforge/internal/cli"
	"github.com/vk/dagforge/internal/config"
	"github.com/vk/dagforge/internal/hcl"
	"github.com/vk/dagforge/internal/yaml"
)

// main is the entrypoint for the dagforge application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	dagforgeApp, err := app.NewApp(outW, errW, appConfig, loaderFor(appConfig.PipelinePath))
	if err != nil {
		return err
	}

	return dagforgeApp.Run(context.Background())
}

// loaderFor picks the pipeline loader matching the path's file extension.
// Directories default to HCL, matching the definition-file convention.
func loaderFor(path string) config.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.NewLoader()
	default:
		return hcl.NewLoader()
	}
}
