package compliance

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pulibrary/ostiposter/pkg/errors"
)

const utf8BOM = "\ufeff"

// Read parses a form input CSV. The header must name the DSpace ID column;
// the other known columns are picked up when present and left for the
// validator to check.
func Read(r io.Reader) (*Table, error) {
	return read(r, "")
}

// ReadFile parses the form input CSV stored at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	return read(f, path)
}

func read(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	// Short rows are padded with empty cells below; long rows are rejected.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &errors.SchemaError{Column: ColumnDSpaceID, Source: sourceName(name)}
	}
	if err != nil {
		return nil, parseError(name, err)
	}

	columns := make([]string, len(header))
	positions := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		col = strings.TrimSpace(col)
		columns[i] = col
		if _, seen := positions[col]; !seen {
			positions[col] = i
		}
	}

	if _, ok := positions[ColumnDSpaceID]; !ok {
		return nil, &errors.SchemaError{Column: ColumnDSpaceID, Source: sourceName(name)}
	}

	table := &Table{Columns: columns}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(name, err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) > len(header) {
			pe := errors.NewParseError("csv", name, csv.ErrFieldCount.Error(), csv.ErrFieldCount)
			pe.Line = line
			return nil, pe
		}
		cell := func(column string) string {
			if i, ok := positions[column]; ok && i < len(record) {
				return record[i]
			}
			return ""
		}

		table.Rows = append(table.Rows, Row{
			DSpaceID:                strings.TrimSpace(cell(ColumnDSpaceID)),
			SponsoringOrganizations: cell(ColumnSponsoringOrganizations),
			DOEContract:             cell(ColumnDOEContract),
			Datatype:                cell(ColumnDatatype),
			Author:                  cell(ColumnAuthor),
			Line:                    line,
		})
	}

	return table, nil
}

func parseError(name string, err error) error {
	pe := errors.NewParseError("csv", name, err.Error(), err)
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		pe.Line = csvErr.Line
		pe.Message = csvErr.Err.Error()
	}
	return pe
}

func sourceName(name string) string {
	if name == "" {
		return "form input"
	}
	return name
}
