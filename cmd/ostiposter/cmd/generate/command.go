// Package generate implements the generate command, which merges the inputs
// and writes the registry payload.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/pulibrary/ostiposter"
	"github.com/pulibrary/ostiposter/cmd/application"
	"github.com/pulibrary/ostiposter/internal/cmd/output"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// NewCommand creates the generate command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		outputFile string
		noPrint    bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Validate the form input and write the OSTI payload",
		Long: `Generate validates the compliance spreadsheet, joins every row with its
repository record by DSpace ID and writes the records to the payload file
in the data directory (osti.json by default).

Nothing is written when any row fails validation or the join.`,
		Example: `  ostiposter generate                        # Write data/osti.json
  ostiposter generate -o json                # Also print the payload
  ostiposter generate --data-dir ./exports   # Use another data directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := app.Poster(ostiposter.WithOutputFile(outputFile))
			if err != nil {
				return err
			}

			records, err := p.Generate(cmd.Context())
			if err != nil {
				return err
			}

			if noPrint {
				return nil
			}
			return Print(cmd, records, output.Format(app.OutputFormat()))
		},
	}

	cmd.Flags().StringVar(&outputFile, "output-file", "", "payload file name, relative to the data directory")
	cmd.Flags().BoolVar(&noPrint, "no-print", false, "write the payload without printing the records")

	return cmd
}

// Print writes records to the command output in format.
func Print(cmd *cobra.Command, records []osti.Record, format output.Format) error {
	return output.FormatRecords(cmd.OutOrStdout(), records, format)
}
