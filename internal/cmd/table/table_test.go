package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulibrary/ostiposter/pkg/constants"
	"github.com/pulibrary/ostiposter/pkg/errors"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

func TestCell(t *testing.T) {
	assert.Equal(t, Placeholder, Cell(""))
	assert.Equal(t, Placeholder, Cell("  \n "))
	assert.Equal(t, "first second", Cell("first\n\nsecond"))

	long := strings.Repeat("plasma ", 20)
	got := Cell(long)
	assert.LessOrEqual(t, runewidth.StringWidth(got), constants.MaxCellWidth)
	assert.True(t, strings.HasSuffix(got, "..."))

	wide := strings.Repeat("核融合", 30)
	assert.LessOrEqual(t, runewidth.StringWidth(Cell(wide)), constants.MaxCellWidth)
}

func TestRecordsToTableData(t *testing.T) {
	desc := "Abstract"
	records := []osti.Record{
		{Title: "Plasma Study", DatasetType: "GD", ContractNos: "DE-1234", SponsorOrg: "DOE", AccessionNum: "88435/abc", Description: &desc},
		{Title: "Second", DatasetType: "AS", AccessionNum: "88435/def"},
	}

	data := RecordsToTableData(records, false)
	require.Len(t, data.Rows, 2)
	assert.Len(t, data.Headers, 6)
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
	assert.Equal(t, []string{"1", "88435/abc", "Plasma Study", "GD", "DE-1234", "DOE"}, data.Rows[0])
	assert.Equal(t, Placeholder, data.Rows[1][4])

	wide := RecordsToTableData(records, true)
	assert.Len(t, wide.Headers, 10)
	assert.Len(t, wide.ColumnAlignment, len(wide.Headers))
	assert.Equal(t, "Abstract", wide.Rows[0][9])
	assert.Equal(t, Placeholder, wide.Rows[1][8])
}

func TestNewViolations(t *testing.T) {
	errs := []error{
		errors.NewSchemaError("Datatype"),
		errors.NewMissingFieldError("Author", "X1", 2),
		fmt.Errorf("wrapped: %w", errors.NewInvalidEnumError("Datatype", "ZZ", "X2", 3, nil)),
		errors.NewJoinIntegrityError("X9", 0, 4),
		errors.New("boom"),
	}

	got := NewViolations(errs)
	require.Len(t, got, 5)

	assert.Equal(t, Violation{Kind: "schema", Column: "Datatype", Message: errs[0].Error()}, got[0])
	assert.Equal(t, Violation{Kind: "missing", Column: "Author", Row: "X1", Line: 2, Message: errs[1].Error()}, got[1])
	assert.Equal(t, "enum", got[2].Kind)
	assert.Equal(t, "ZZ", got[2].Value)
	assert.Equal(t, Violation{Kind: "join", Row: "X9", Line: 4, Message: errs[3].Error()}, got[3])
	assert.Equal(t, Violation{Kind: "error", Message: "boom"}, got[4])
}
