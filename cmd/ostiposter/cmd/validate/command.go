// Package validate implements the validate command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pulibrary/ostiposter/cmd/application"
	"github.com/pulibrary/ostiposter/internal/cmd/output"
	"github.com/pulibrary/ostiposter/internal/cmd/table"
	"github.com/pulibrary/ostiposter/pkg/errors"
	"github.com/pulibrary/ostiposter/pkg/logging"
	"github.com/pulibrary/ostiposter/pkg/pipeline"
)

// Flags holds the validate command flags.
type Flags struct {
	All   bool
	Merge bool
}

// NewCommand creates the validate command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Check the form input without writing the payload",
		Long: `Validate reads the compliance spreadsheet and checks that the required
columns exist, that every required cell has a value and that every Datatype
is a known OSTI code.

By default the first problem is reported. With --all every problem is
collected into a report. With --merge the repository export is loaded too and
every DSpace ID must match exactly one record.`,
		Example: `  ostiposter validate              # Stop at the first problem
  ostiposter validate --all -o json  # Report every problem as JSON
  ostiposter validate --merge      # Also check the join`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.All, "all", false, "report every problem instead of stopping at the first")
	cmd.Flags().BoolVar(&flags.Merge, "merge", false, "also join with the repository export")

	return cmd
}

// Run validates the configured inputs and prints the result.
func Run(cmd *cobra.Command, app application.Application, flags *Flags) error {
	ctx := logging.WithOperation(cmd.Context(), "validate")
	logger := logging.FromContext(ctx)

	p, err := app.Poster()
	if err != nil {
		return err
	}

	form, err := p.LoadFormInput()
	if err != nil {
		return err
	}

	check := pipeline.Validate
	if flags.All {
		check = pipeline.ValidateAll
	}
	err = check(form)

	if err == nil && flags.Merge {
		_, err = p.Build(ctx)
	}

	if err != nil {
		// Load failures are returned as they are, not reported as violations.
		if !errors.IsValidationError(err) {
			return err
		}
		if errors.IsSchemaError(err) {
			logger.Warn().Strs("required", pipeline.SchemaColumns).Msg("Form input header is missing required columns")
		}

		violations := pipeline.Violations(err)
		if flags.All {
			if printErr := report(cmd, app, violations); printErr != nil {
				return printErr
			}
		}
		logger.Debug().Int("violations", len(violations)).Msg("Form input rejected")
		return fmt.Errorf("%s: %w", p.FormInputPath(), err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows OK\n", p.FormInputPath(), form.Len())
	return err
}

func report(cmd *cobra.Command, app application.Application, violations []error) error {
	format := output.Format(app.OutputFormat())
	return output.FormatViolations(cmd.OutOrStdout(), table.NewViolations(violations), format)
}
