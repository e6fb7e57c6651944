// Package table converts registry records and validation reports into rows
// for the CLI table renderer.
package table

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pulibrary/ostiposter/pkg/constants"
	"github.com/pulibrary/ostiposter/pkg/errors"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Placeholder fills cells that have no value.
const Placeholder = "-"

// RecordsToTableData converts records to table format. Wide adds the
// creators, site URL, keywords and description columns.
func RecordsToTableData(records []osti.Record, wide bool) Data {
	headers := []string{"#", "Accession", "Title", "Type", "Contract", "Sponsor"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignCenter, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Creators", "Site URL", "Keywords", "Description")
		align = append(align, AlignLeft, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		row := []string{
			strconv.Itoa(i + 1),
			Cell(rec.AccessionNum),
			Cell(rec.Title),
			Cell(rec.DatasetType),
			Cell(rec.ContractNos),
			Cell(rec.SponsorOrg),
		}
		if wide {
			row = append(row,
				Cell(rec.Creators),
				rec.SiteURL,
				Cell(rec.KeywordsText()),
				Cell(rec.DescriptionText()),
			)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// Cell flattens s onto one line and truncates it to constants.MaxCellWidth
// display columns. Empty values become Placeholder.
func Cell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return Placeholder
	}
	return runewidth.Truncate(s, constants.MaxCellWidth, "...")
}

// Violation is one validation or join failure, flattened for reporting.
type Violation struct {
	Kind    string `json:"kind" yaml:"kind"`
	Column  string `json:"column,omitempty" yaml:"column,omitempty"`
	Row     string `json:"row,omitempty" yaml:"row,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// NewViolations describes each error. Errors outside the validation
// taxonomy are reported with kind "error".
func NewViolations(errs []error) []Violation {
	out := make([]Violation, 0, len(errs))
	for _, err := range errs {
		out = append(out, describe(err))
	}
	return out
}

func describe(err error) Violation {
	v := Violation{Kind: "error", Message: err.Error()}

	var schemaErr *errors.SchemaError
	var missingErr *errors.MissingFieldError
	var enumErr *errors.InvalidEnumError
	var joinErr *errors.JoinIntegrityError

	switch {
	case errors.As(err, &schemaErr):
		v.Kind = "schema"
		v.Column = schemaErr.Column
	case errors.As(err, &missingErr):
		v.Kind = "missing"
		v.Column = missingErr.Column
		v.Row = missingErr.Row
		v.Line = missingErr.Line
	case errors.As(err, &enumErr):
		v.Kind = "enum"
		v.Column = enumErr.Column
		v.Row = enumErr.Row
		v.Line = enumErr.Line
		v.Value = enumErr.Value
	case errors.As(err, &joinErr):
		v.Kind = "join"
		v.Row = joinErr.Key
		v.Line = joinErr.Line
	}
	return v
}
