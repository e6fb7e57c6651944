// Package osti defines the flat dataset record accepted by the OSTI
// registry and the fixed values every record from this pipeline carries.
package osti

import "slices"

// SiteURLBase is prefixed to a repository handle to build a record's site_url.
// The handle is appended as-is, without a separator.
const SiteURLBase = "https://dataspace.princeton.edu/handle"

// ResearchOrg is the research organization reported for every record.
const ResearchOrg = "PPPL"

// DatatypeCodes is the closed set of dataset type codes the registry accepts.
var DatatypeCodes = []string{"AS", "GD", "IM", "ND", "IP", "FP", "SM", "MM", "I"}

// IsDatatypeCode reports whether code is one of DatatypeCodes.
func IsDatatypeCode(code string) bool {
	return slices.Contains(DatatypeCodes, code)
}

// SiteURL returns the landing page URL for a repository handle.
func SiteURL(handle string) string {
	return SiteURLBase + handle
}

// Record is one dataset ready for submission. Description and Keywords are
// nil when the source item has no abstract or subject entries, and are then
// left out of the JSON entirely.
type Record struct {
	Title        string  `json:"title" yaml:"title"`
	Creators     string  `json:"creators" yaml:"creators"`
	DatasetType  string  `json:"dataset_type" yaml:"dataset_type"`
	SiteURL      string  `json:"site_url" yaml:"site_url"`
	ContractNos  string  `json:"contract_nos" yaml:"contract_nos"`
	SponsorOrg   string  `json:"sponsor_org" yaml:"sponsor_org"`
	ResearchOrg  string  `json:"research_org" yaml:"research_org"`
	AccessionNum string  `json:"accession_num" yaml:"accession_num"`
	Description  *string `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords     *string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// HasDescription reports whether the description field is present.
func (r Record) HasDescription() bool {
	return r.Description != nil
}

// HasKeywords reports whether the keywords field is present.
func (r Record) HasKeywords() bool {
	return r.Keywords != nil
}

// DescriptionText returns the description, or "" when absent.
func (r Record) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

// KeywordsText returns the keywords, or "" when absent.
func (r Record) KeywordsText() string {
	if r.Keywords == nil {
		return ""
	}
	return *r.Keywords
}
