package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pcbkit/internal/logger"
	"github.com/joshuapare/pcbkit/pcb/script"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	debug   bool
	logFile string
)

// closeLog releases the log file opened by the persistent pre-run.
var closeLog = func() error { return nil }

var rootCmd = &cobra.Command{
	Use:   "pcbctl",
	Short: "Build, tear down and compare PCB hierarchy tables",
	Long: `pcbctl drives two fixed-capacity process-control-block tables through
create/destroy scripts. One table keeps a linked list of children per slot,
the other links siblings through indices. pcbctl times them against each
other, prints the hierarchy they hold and checks their invariants.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		closer, err := logger.Init(logger.Options{
			Enabled: debug || logFile != "",
			Level:   level,
			File:    logFile,
		})
		if err != nil {
			return fmt.Errorf("failed to init logging: %w", err)
		}
		closeLog = closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write structured logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append JSON logs to this file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// loadScript returns the script at path, or the default script when path is empty.
func loadScript(path string) (script.Script, error) {
	if path == "" {
		return script.Default(), nil
	}
	printVerbose("Loading script: %s\n", path)
	return script.Load(path)
}
