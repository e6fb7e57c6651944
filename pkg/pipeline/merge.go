package pipeline

import (
	"strings"

	"github.com/pulibrary/ostiposter/pkg/compliance"
	"github.com/pulibrary/ostiposter/pkg/dspace"
	"github.com/pulibrary/ostiposter/pkg/errors"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// Separators used when flattening repeated metadata values.
const (
	CreatorSeparator     = ";"
	DescriptionSeparator = "\n\n"
	KeywordSeparator     = ";"
)

// Merge joins every row to its repository record and builds the registry
// records in row order. Each row must match exactly one record; a blank
// DSpace ID matches nothing.
func Merge(table *compliance.Table, records *dspace.RecordSet) ([]osti.Record, error) {
	index := records.Index()

	out := make([]osti.Record, 0, table.Len())
	for _, row := range rows(table) {
		var matches []*dspace.Record
		if row.DSpaceID != "" {
			matches = index.Lookup(row.DSpaceID)
		}
		if len(matches) != 1 {
			return nil, errors.NewJoinIntegrityError(row.DSpaceID, len(matches), row.Line)
		}
		out = append(out, BuildRecord(row, matches[0]))
	}
	return out, nil
}

// BuildRecord builds the registry record for one row and its matched item.
func BuildRecord(row compliance.Row, item *dspace.Record) osti.Record {
	rec := osti.Record{
		Title:        item.Name,
		Creators:     strings.Join(item.Authors(), CreatorSeparator),
		DatasetType:  row.Datatype,
		SiteURL:      osti.SiteURL(item.Handle),
		ContractNos:  row.DOEContract,
		SponsorOrg:   row.SponsoringOrganizations,
		ResearchOrg:  osti.ResearchOrg,
		AccessionNum: item.Handle,
	}

	if abstracts := item.Abstracts(); len(abstracts) > 0 {
		description := strings.Join(abstracts, DescriptionSeparator)
		rec.Description = &description
	}
	if subjects := item.Subjects(); len(subjects) > 0 {
		keywords := strings.Join(subjects, KeywordSeparator)
		rec.Keywords = &keywords
	}

	return rec
}

func rows(table *compliance.Table) []compliance.Row {
	if table == nil {
		return nil
	}
	return table.Rows
}
