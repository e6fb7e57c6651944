package pipeline

import (
	"context"

	"github.com/pulibrary/ostiposter/pkg/compliance"
	"github.com/pulibrary/ostiposter/pkg/dspace"
	"github.com/pulibrary/ostiposter/pkg/logging"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// Run validates table and merges it with records.
func Run(table *compliance.Table, records *dspace.RecordSet) ([]osti.Record, error) {
	return RunContext(context.Background(), table, records)
}

// RunContext is Run with the logger taken from ctx. The context is not
// checked for cancellation; the work is a single in-memory pass.
func RunContext(ctx context.Context, table *compliance.Table, records *dspace.RecordSet) ([]osti.Record, error) {
	logger := logging.FromContext(ctx)

	if err := Validate(table); err != nil {
		logger.Debug().Err(err).Int("rows", table.Len()).Msg("Form input rejected")
		return nil, err
	}

	out, err := Merge(table, records)
	if err != nil {
		logger.Debug().Err(err).Int("records", records.Len()).Msg("Join failed")
		return nil, err
	}

	logger.Debug().
		Int("rows", table.Len()).
		Int("repository_records", records.Len()).
		Msg("Merged form input with repository export")

	return out, nil
}
