package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pulibrary/ostiposter/internal/cmd/output"
	"github.com/pulibrary/ostiposter/pkg/logging"
)

// Execute runs the ostiposter CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ostiposter",
		Short:   "Prepare and submit dataset records to OSTI",
		Version: a.version,
		Long: `ostiposter merges the DSpace export of PPPL datasets with the curated
compliance spreadsheet and produces the JSON payload for the OSTI E-Link
registry, one record per spreadsheet row.

The spreadsheet is validated first. A missing column, an empty required cell,
an unknown datatype code or a row whose DSpace ID does not match exactly one
repository record stops the run, and no payload is written.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	// Flag defaults are the loaded configuration, so an unset flag keeps it
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", "", "config file (default is ./.ostiposter.yaml or $HOME/.ostiposter.yaml)")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, wide, json, yaml")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.StringVar(&a.config.DataDir, "data-dir", a.config.DataDir, "directory holding the repository export and the payload")
	flags.StringVar(&a.config.FormInput, "form-input", a.config.FormInput, "compliance spreadsheet exported as CSV")

	rootCmd.SetVersionTemplate("ostiposter {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		if err := a.reloadConfig(cmd.Flags()); err != nil {
			return err
		}
	}

	if !cmd.Flags().Changed("log-level") && (a.config.Verbose || a.config.Quiet) {
		a.config.LogLevel = ""
	}

	format, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}
	a.config.Format = string(format)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))
	return nil
}

// reloadConfig loads the file named by --config and re-applies the flags
// given on the command line on top of it.
func (a *App) reloadConfig(flags *pflag.FlagSet) error {
	given := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		given[f.Name] = f.Value.String()
	})

	config, err := LoadConfig(a.config.ConfigFile)
	if err != nil {
		return err
	}
	*a.config = *config

	for name, value := range given {
		if err := flags.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
