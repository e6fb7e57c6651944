// Package compliance holds the curated spreadsheet that supplies the
// funding and classification fields the repository export lacks.
package compliance

import (
	"slices"
	"strings"
)

// Column names as they appear in the form input header.
const (
	ColumnDSpaceID                = "DSpace ID"
	ColumnSponsoringOrganizations = "Sponsoring Organizations"
	ColumnDOEContract             = "DOE Contract"
	ColumnDatatype                = "Datatype"
	ColumnAuthor                  = "Author"
)

// Row is one curated row, joined to a repository record by DSpaceID.
type Row struct {
	DSpaceID                string `json:"dspace_id" yaml:"dspace_id"`
	SponsoringOrganizations string `json:"sponsoring_organizations" yaml:"sponsoring_organizations"`
	DOEContract             string `json:"doe_contract" yaml:"doe_contract"`
	Datatype                string `json:"datatype" yaml:"datatype"`
	Author                  string `json:"author" yaml:"author"`

	// Line is the 1-based line of the row in its source file, 0 when built in memory.
	Line int `json:"-" yaml:"-"`
}

// Value returns the cell for a known column name.
func (r Row) Value(column string) (string, bool) {
	switch column {
	case ColumnDSpaceID:
		return r.DSpaceID, true
	case ColumnSponsoringOrganizations:
		return r.SponsoringOrganizations, true
	case ColumnDOEContract:
		return r.DOEContract, true
	case ColumnDatatype:
		return r.Datatype, true
	case ColumnAuthor:
		return r.Author, true
	}
	return "", false
}

// IsEmpty reports whether a cell counts as missing.
func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Table is the parsed form input: its header and its rows in file order.
// DSpace IDs are not required to be unique.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable builds a table from an explicit header and rows.
func NewTable(columns []string, rows ...Row) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// Has reports whether column is present in the header.
func (t *Table) Has(column string) bool {
	return t != nil && slices.Contains(t.Columns, column)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
