// Package submit implements the submit command, which posts the payload to
// the OSTI registry.
package submit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulibrary/ostiposter/cmd/application"
	"github.com/pulibrary/ostiposter/pkg/logging"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// Flags holds the submit command flags.
type Flags struct {
	Generate bool
	DryRun   bool
}

// NewCommand creates the submit command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "submit",
		GroupID: "core",
		Short:   "Post the payload to the OSTI registry",
		Long: `Submit reads the payload file from the data directory and posts it to the
configured registry endpoint (osti_endpoint). Credentials come from
osti_username and osti_password, or osti_token, set in the environment,
a .env file or the config file.

The payload is sent once. A rejected payload is reported with the
registry's status and message.`,
		Example: `  ostiposter submit                 # Post data/osti.json
  ostiposter submit --generate      # Regenerate the payload first
  ostiposter submit --dry-run       # Print what would be posted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.Generate, "generate", false, "run generate before submitting")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "print the payload instead of posting it")

	return cmd
}

// Run loads or generates the payload and submits it.
func Run(cmd *cobra.Command, app application.Application, flags *Flags) error {
	ctx := logging.WithOperation(cmd.Context(), "submit")

	p, err := app.Poster()
	if err != nil {
		return err
	}

	var records []osti.Record
	if flags.Generate {
		records, err = p.Generate(ctx)
	} else {
		records, err = p.ReadPayload()
	}
	if err != nil {
		return err
	}

	if flags.DryRun {
		return osti.Write(cmd.OutOrStdout(), records)
	}

	if err := p.Submit(ctx, records); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Submitted %d records\n", len(records))
	return err
}
