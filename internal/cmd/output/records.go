package output

import (
	"io"

	"github.com/pulibrary/ostiposter/internal/cmd/table"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// FormatRecords writes records in the requested format. JSON output is the
// registry payload itself, byte for byte what the payload file holds.
func FormatRecords(w io.Writer, records []osti.Record, format Format) error {
	switch format {
	case FormatJSON:
		return osti.Write(w, records)
	case FormatYAML:
		if records == nil {
			records = []osti.Record{}
		}
		return NewFormatter(format).Format(w, records)
	case FormatWide:
		return NewFormatter(format).Format(w, table.RecordsToTableData(records, true))
	default:
		return NewFormatter(FormatTable).Format(w, table.RecordsToTableData(records, false))
	}
}

// FormatViolations writes a validation report in the requested format.
// Tables get one column per Violation field.
func FormatViolations(w io.Writer, violations []table.Violation, format Format) error {
	if violations == nil {
		violations = []table.Violation{}
	}
	return NewFormatter(format).Format(w, violations)
}
