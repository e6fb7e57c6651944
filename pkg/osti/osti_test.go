package osti

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestIsDatatypeCode(t *testing.T) {
	for _, code := range []string{"AS", "GD", "IM", "ND", "IP", "FP", "SM", "MM", "I"} {
		assert.True(t, IsDatatypeCode(code), code)
	}
	for _, code := range []string{"", "gd", "XX", "G D", "II"} {
		assert.False(t, IsDatatypeCode(code), code)
	}
}

func TestSiteURL(t *testing.T) {
	assert.Equal(t, "https://dataspace.princeton.edu/handle88435/abc", SiteURL("88435/abc"))
}

func TestMarshal(t *testing.T) {
	records := []Record{{
		Title:        "Plasma <Study> & more",
		Creators:     "A. Smith;B. Lee",
		DatasetType:  "GD",
		SiteURL:      SiteURL("88435/abc"),
		ContractNos:  "DE-1234",
		SponsorOrg:   "DOE",
		ResearchOrg:  ResearchOrg,
		AccessionNum: "88435/abc",
		Keywords:     strPtr("fusion"),
	}}

	data, err := Marshal(records)
	require.NoError(t, err)

	want := `[
    {
        "title": "Plasma <Study> & more",
        "creators": "A. Smith;B. Lee",
        "dataset_type": "GD",
        "site_url": "https://dataspace.princeton.edu/handle88435/abc",
        "contract_nos": "DE-1234",
        "sponsor_org": "DOE",
        "research_org": "PPPL",
        "accession_num": "88435/abc",
        "keywords": "fusion"
    }
]
`
	assert.Equal(t, want, string(data))
	assert.NotContains(t, string(data), "description")
}

func TestMarshalKeepsNonASCII(t *testing.T) {
	data, err := Marshal([]Record{{Title: "Étude du plasma", Creators: "Müller, J."}})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"title": "Étude du plasma"`)
	assert.Contains(t, string(data), `"creators": "Müller, J."`)
	assert.NotContains(t, string(data), `\u00`)
	assert.True(t, strings.HasSuffix(string(data), "]\n"))
}

func TestMarshalEmptyDescriptionIsKept(t *testing.T) {
	data, err := Marshal([]Record{{Description: strPtr("")}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"description": ""`)
	assert.NotContains(t, string(data), "keywords")
}

func TestMarshalNil(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteReadRoundTrip(t *testing.T) {
	records := []Record{
		{Title: "one", Description: strPtr("a\n\nb")},
		{Title: "two"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))

	decoded, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.True(t, decoded[0].HasDescription())
	assert.Equal(t, "a\n\nb", decoded[0].DescriptionText())
	assert.False(t, decoded[1].HasDescription())
	assert.False(t, decoded[1].HasKeywords())
	assert.Equal(t, "", decoded[1].KeywordsText())
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "osti.json")

	require.NoError(t, WriteFile(path, []Record{{Title: "one"}}))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, []Record{{Title: "one"}}))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")

	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one", records[0].Title)
}

func TestWriteFileMissingDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "absent", "osti.json"), nil)
	assert.Error(t, err)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("{"))
	assert.Error(t, err)

	_, err = ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
