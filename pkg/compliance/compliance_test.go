package compliance

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulibrary/ostiposter/pkg/errors"
)

const formCSV = `DSpace ID,Sponsoring Organizations,DOE Contract,Datatype,Author,Notes
X1,DOE,DE-1234,GD,A. Smith,first
 X2 ,"Office of Science, FES",DE-AC02-09CH11466,ND,B. Lee,
`

func TestRead(t *testing.T) {
	table, err := Read(strings.NewReader(formCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"DSpace ID", "Sponsoring Organizations", "DOE Contract", "Datatype", "Author", "Notes"}, table.Columns)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, Row{
		DSpaceID:                "X1",
		SponsoringOrganizations: "DOE",
		DOEContract:             "DE-1234",
		Datatype:                "GD",
		Author:                  "A. Smith",
		Line:                    2,
	}, table.Rows[0])

	second := table.Rows[1]
	assert.Equal(t, "X2", second.DSpaceID)
	assert.Equal(t, "Office of Science, FES", second.SponsoringOrganizations)
	assert.Equal(t, 3, second.Line)
}

func TestReadMissingOptionalColumns(t *testing.T) {
	table, err := Read(strings.NewReader("DSpace ID,Datatype\nX1,GD\n"))
	require.NoError(t, err)

	assert.True(t, table.Has(ColumnDatatype))
	assert.False(t, table.Has(ColumnDOEContract))
	assert.Equal(t, "", table.Rows[0].DOEContract)
}

func TestReadShortRowPadsEmptyCells(t *testing.T) {
	table, err := Read(strings.NewReader("DSpace ID,Sponsoring Organizations,DOE Contract,Datatype,Author\nX1,DOE,DE-1,GD\n"))
	require.NoError(t, err)

	require.Equal(t, 1, table.Len())
	assert.Equal(t, "GD", table.Rows[0].Datatype)
	assert.Equal(t, "", table.Rows[0].Author)
	assert.True(t, table.Has(ColumnAuthor))
}

func TestReadBOM(t *testing.T) {
	table, err := Read(strings.NewReader("\ufeffDSpace ID,Author\nX1,A\n"))
	require.NoError(t, err)
	assert.True(t, table.Has(ColumnDSpaceID))
	assert.Equal(t, "X1", table.Rows[0].DSpaceID)
}

func TestReadErrors(t *testing.T) {
	t.Run("no index column", func(t *testing.T) {
		_, err := Read(strings.NewReader("ID,Author\nX1,A\n"))
		assert.True(t, errors.IsSchemaError(err))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		assert.True(t, errors.IsSchemaError(err))
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := Read(strings.NewReader("DSpace ID,Author\nX1,A,extra\n"))
		var parseErr *errors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "csv", parseErr.Format)
		assert.Equal(t, 2, parseErr.Line)
		assert.ErrorIs(t, err, csv.ErrFieldCount)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
		var ioErr *errors.IOError
		assert.ErrorAs(t, err, &ioErr)
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form_input.csv")
	require.NoError(t, os.WriteFile(path, []byte(formCSV), 0o644))

	table, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestRowValue(t *testing.T) {
	row := Row{DSpaceID: "X1", Datatype: "GD", Author: "A"}

	v, ok := row.Value(ColumnDatatype)
	assert.True(t, ok)
	assert.Equal(t, "GD", v)

	_, ok = row.Value("Notes")
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty(" \t"))
	assert.False(t, IsEmpty("GD"))
}

func TestNilTable(t *testing.T) {
	var table *Table
	assert.False(t, table.Has(ColumnDSpaceID))
	assert.Equal(t, 0, table.Len())
}
