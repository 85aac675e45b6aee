// Package main is the entry point for the support tools shell.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.SupportTools/internal/config"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/logging"
	"github.com/LISSConsulting/LISSTech.SupportTools/internal/tui"
)

// version is set at build time via -ldflags.
var version = "dev"

// commands are the remediation entries shown in the Commands pane.
var commands = []string{"Fix apt/dpkg", "Item 2", "Item 3"}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func rootCmd() *cobra.Command {
	var cfgPath, logFile string

	root := &cobra.Command{
		Use:          "support",
		Short:        "Support Tools: interactive remediation shell",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath, logFile)
			if err != nil {
				return err
			}
			return runShell(cfg)
		},
	}
	root.Flags().StringVar(&cfgPath, "config", "", "path to support.toml (default: search upward from the working directory)")
	root.Flags().StringVar(&logFile, "log-file", "", "diagnostic log path (overrides log.file)")

	root.AddCommand(initCmd())
	return root
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create support.toml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

// configError marks failures that exit with status 2.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var ce *configError
	if errors.As(err, &ce) {
		return 2
	}
	return 1
}

// loadConfig loads and validates the config, applying flag overrides.
func loadConfig(path, logFile string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, &configError{err: err}
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, &configError{err: fmt.Errorf("config: %w", err)}
	}
	return cfg, nil
}

// runShell opens the log and the terminal, then runs the controller until
// the user quits. The terminal is restored before any error is returned.
func runShell(cfg *config.Config) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return &configError{err: err}
	}
	logger, closeLog, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	term, err := tui.Open()
	if err != nil {
		logger.Error("terminal.open", "error", err)
		return fmt.Errorf("open terminal: %w", err)
	}

	ctrl := newController(cfg, logger)
	if err := ctrl.Run(term); err != nil {
		logger.Error("loop.error", "error", err)
		return err
	}
	return nil
}
