package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/dagforge/internal/app"
	"github.com/vk/dagforge/internal/grouping"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dagforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
dagforge - Compiles a declarative pipeline definition into a scheduler DAG file.

Usage:
  dagforge [options] [PIPELINE_PATH]

Arguments:
  PIPELINE_PATH
    Path to a .hcl or .yaml pipeline file, or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	pipelineFlag := flagSet.String("pipeline", "", "Path to the pipeline definition file or directory.")
	pFlag := flagSet.String("p", "", "Path to the pipeline definition file or directory (shorthand).")
	outFlag := flagSet.String("out", "", "Path of the generated file. Empty writes to stdout.")
	oFlag := flagSet.String("o", "", "Path of the generated file (shorthand).")
	targetFlag := flagSet.String("target", "airflow", "Output target. Options: 'airflow' or 'dot'.")
	templateFlag := flagSet.String("template", "", "Template file overriding the target's builtin template.")
	dagNameFlag := flagSet.String("dag-name", "", "Identifier of the generated DAG. Defaults to the pipeline name.")
	scheduleFlag := flagSet.String("schedule", "", "Cron expression or @descriptor for the generated DAG.")
	groupByFlag := flagSet.String("group-by", "none", "Grouping mode. Options: 'none' or 'by-tag'.")
	groupTagFlag := flagSet.String("group-tag", "", "Tag key to group on when -group-by=by-tag.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *pipelineFlag != "" {
		path = *pipelineFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Pipeline path determined.", "path", path)

	if path == "" {
		slog.Debug("No pipeline path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	outPath := *outFlag
	if outPath == "" {
		outPath = *oFlag
	}

	mode, err := grouping.ParseMode(*groupByFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if mode == grouping.ModeByTag && *groupTagFlag == "" {
		return nil, false, &ExitError{Code: 2, Message: "-group-by=by-tag requires -group-tag"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PipelinePath: path,
		OutputPath:   outPath,
		TemplatePath: *templateFlag,
		Target:       strings.ToLower(*targetFlag),
		DAGName:      *dagNameFlag,
		Schedule:     *scheduleFlag,
		GroupMode:    mode,
		GroupTag:     *groupTagFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
