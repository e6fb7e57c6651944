// Package pipeline validates the curated compliance table and merges it with
// the repository export into registry records. A run either yields one
// record per row, in row order, or an error and no records at all.
package pipeline

import (
	"github.com/pulibrary/ostiposter/pkg/compliance"
	"github.com/pulibrary/ostiposter/pkg/errors"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// SchemaColumns must be present in the table header.
var SchemaColumns = []string{
	compliance.ColumnSponsoringOrganizations,
	compliance.ColumnDOEContract,
	compliance.ColumnDatatype,
}

// RequiredColumns must hold a value on every row.
var RequiredColumns = []string{
	compliance.ColumnSponsoringOrganizations,
	compliance.ColumnDOEContract,
	compliance.ColumnDatatype,
	compliance.ColumnAuthor,
}

// Validate checks the table and returns the first violation found.
// Checks run in order: header columns, non-empty required cells, then
// datatype codes.
func Validate(table *compliance.Table) error {
	var first error
	validate(table, func(err error) bool {
		first = err
		return false
	})
	return first
}

// ValidateAll runs the same checks as Validate but keeps going after a
// violation and returns every one of them joined. Rules that depend on a
// failed earlier rule are skipped.
func ValidateAll(table *compliance.Table) error {
	var errs []error
	validate(table, func(err error) bool {
		errs = append(errs, err)
		return true
	})
	return errors.Join(errs...)
}

// Violations splits an error returned by ValidateAll into its parts.
// Any other non-nil error is returned as a single violation.
func Violations(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// validate reports each violation to report, stopping when report returns false.
func validate(table *compliance.Table, report func(error) bool) {
	if table == nil {
		table = &compliance.Table{}
	}

	schemaOK := true
	for _, col := range SchemaColumns {
		if !table.Has(col) {
			schemaOK = false
			if !report(errors.NewSchemaError(col)) {
				return
			}
		}
	}
	if !schemaOK {
		return
	}

	for _, col := range RequiredColumns {
		if !table.Has(col) {
			if !report(errors.NewSchemaError(col)) {
				return
			}
			continue
		}
		for _, row := range table.Rows {
			value, _ := row.Value(col)
			if compliance.IsEmpty(value) {
				if !report(errors.NewMissingFieldError(col, row.DSpaceID, row.Line)) {
					return
				}
			}
		}
	}

	for _, row := range table.Rows {
		if compliance.IsEmpty(row.Datatype) {
			continue
		}
		if !osti.IsDatatypeCode(row.Datatype) {
			err := errors.NewInvalidEnumError(compliance.ColumnDatatype, row.Datatype, row.DSpaceID, row.Line, osti.DatatypeCodes)
			if !report(err) {
				return
			}
		}
	}
}
