package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulibrary/ostiposter/internal/cmd/table"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

func sampleRecords() []osti.Record {
	keywords := "fusion;tokamak"
	return []osti.Record{{
		Title:        "Plasma Study",
		Creators:     "A. Smith;B. Lee",
		DatasetType:  "GD",
		SiteURL:      osti.SiteURL("88435/abc"),
		ContractNos:  "DE-1234",
		SponsorOrg:   "DOE",
		ResearchOrg:  osti.ResearchOrg,
		AccessionNum: "88435/abc",
		Keywords:     &keywords,
	}}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "wide", want: FormatWide},
		{in: "", want: ""},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestFormatRecordsJSONMatchesPayload(t *testing.T) {
	records := sampleRecords()
	want, err := osti.Marshal(records)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatRecords(&buf, records, FormatJSON))
	assert.Equal(t, string(want), buf.String())
}

func TestFormatRecordsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatRecords(&buf, sampleRecords(), FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "title: Plasma Study")
	assert.Contains(t, out, "research_org: PPPL")
	assert.NotContains(t, out, "description")
}

func TestFormatRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatRecords(&buf, sampleRecords(), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "Plasma Study")
	assert.Contains(t, out, "88435/abc")
	assert.NotContains(t, out, "tokamak")

	buf.Reset()
	require.NoError(t, FormatRecords(&buf, sampleRecords(), FormatWide))
	assert.Contains(t, buf.String(), "tokamak")
}

func TestFormatViolations(t *testing.T) {
	violations := []table.Violation{{Kind: "missing", Column: "Author", Row: "X1", Line: 2, Message: "empty"}}

	var buf bytes.Buffer
	require.NoError(t, FormatViolations(&buf, violations, FormatJSON))
	assert.Contains(t, buf.String(), `"kind": "missing"`)

	buf.Reset()
	require.NoError(t, FormatViolations(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, FormatViolations(&buf, violations, FormatTable))
	assert.Contains(t, buf.String(), "Author")
}

func TestFormatViolationsTable(t *testing.T) {
	violations := []table.Violation{
		{Kind: "schema", Column: "Datatype", Message: "missing column"},
		{Kind: "enum", Column: "Datatype", Row: "X1", Line: 3, Value: "ZZ", Message: "bad code"},
	}

	var buf bytes.Buffer
	require.NoError(t, FormatViolations(&buf, violations, FormatTable))

	out := strings.ToLower(buf.String())
	for _, h := range []string{"kind", "column", "row", "line", "value", "message"} {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "zz")

	buf.Reset()
	require.NoError(t, FormatViolations(&buf, nil, FormatTable))
	assert.Contains(t, strings.ToLower(buf.String()), "message", "an empty report still has its header")
	assert.NotContains(t, buf.String(), "[]")
}

func TestStructRows(t *testing.T) {
	data, ok := structRows([]table.Violation{
		{Kind: "schema", Column: "Datatype", Message: "missing column"},
		{Kind: "missing", Column: "Author", Row: "X1", Line: 2, Message: "empty"},
	})
	require.True(t, ok)

	assert.Equal(t, []string{"Kind", "Column", "Row", "Line", "Value", "Message"}, data.Headers)
	assert.Equal(t, table.AlignRight, data.ColumnAlignment[3])
	assert.Equal(t, table.AlignLeft, data.ColumnAlignment[0])
	assert.Equal(t, []string{"schema", "Datatype", table.Placeholder, table.Placeholder, table.Placeholder, "missing column"}, data.Rows[0])
	assert.Equal(t, []string{"missing", "Author", "X1", "2", table.Placeholder, "empty"}, data.Rows[1])

	_, ok = structRows("not a slice")
	assert.False(t, ok)
	_, ok = structRows([]string{"a"})
	assert.False(t, ok)
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"rows": 2}))
	assert.JSONEq(t, `{"rows": 2}`, buf.String())
}
