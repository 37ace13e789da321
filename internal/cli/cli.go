package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vk/targetplan/internal/app"
)

// EnvPrefix prefixes every environment variable that seeds a flag default,
// e.g. TARGETPLAN_WORKERS.
const EnvPrefix = "TARGETPLAN_"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// envString returns the environment default for a flag, or fallback.
func envString(name, fallback string) string {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok && v != "" {
		return v
	}
	return fallback
}

// envInt is envString for integer flags.
func envInt(name string, fallback int) (int, error) {
	raw := envString(name, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %q is not an integer", EnvPrefix, name, raw)
	}
	return v, nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("targetplan", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
targetplan - resolves build target descriptors into build plans.

Usage:
  targetplan [options] [PATH...]

Arguments:
  PATH
    Target descriptor file or directory (.hcl, .yaml, .yml, .json).

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprintf(output, "\nEvery option may also be set with a %s<NAME> environment variable,\ne.g. %sOUT_FORMAT=yaml. A .env file in the working directory is read at start-up.\n", EnvPrefix, EnvPrefix)
	}

	defaultWorkers, err := envInt("WORKERS", 4)
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	targetsFlag := flagSet.String("targets", envString("TARGETS", ""), "Path to the target descriptor file or directory.")
	tFlag := flagSet.String("t", "", "Path to the target descriptor file or directory (shorthand).")
	modulesPathFlag := flagSet.String("modules-path", envString("MODULES_PATH", "modules"), "Path to the directory containing module manifests.")
	outDirFlag := flagSet.String("out-dir", envString("OUT_DIR", ""), "Directory to write plan manifests to. Empty writes them to stdout.")
	outFormatFlag := flagSet.String("out-format", envString("OUT_FORMAT", "json"), "Plan manifest format. Options: 'json' or 'yaml'.")
	workersFlag := flagSet.Int("workers", defaultWorkers, "Number of targets planned concurrently.")
	logFormatFlag := flagSet.String("log-format", envString("LOG_FORMAT", "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envString("LOG_LEVEL", "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	for _, p := range []string{*targetsFlag, *tFlag} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Target paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No target path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	outFormat := strings.ToLower(*outFormatFlag)
	if outFormat != "json" && outFormat != "yaml" {
		return nil, false, usageError("invalid out-format: must be 'json' or 'yaml'")
	}

	if *workersFlag < 1 {
		return nil, false, usageError("invalid workers: must be at least 1")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		TargetPaths: paths,
		ModulesPath: *modulesPathFlag,
		OutDir:      *outDirFlag,
		OutFormat:   outFormat,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		WorkerCount: *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
