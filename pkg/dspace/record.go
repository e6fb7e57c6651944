// Package dspace models the repository export: deposited items with their
// title, handle and an ordered, repeatable list of namespaced metadata
// entries.
package dspace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Metadata keys the registry payload is built from.
const (
	KeyAuthor   = "dc.contributor.author"
	KeyAbstract = "dc.description.abstract"
	KeySubject  = "dc.subject"
)

// Record is one deposited item from the repository export.
type Record struct {
	ID       ID       `json:"id"`
	Name     string   `json:"name"`
	Handle   string   `json:"handle"`
	Metadata Metadata `json:"metadata"`
}

// Authors returns the author values in export order.
func (r *Record) Authors() []string {
	return r.Metadata.Values(KeyAuthor)
}

// Abstracts returns the abstract values in export order.
func (r *Record) Abstracts() []string {
	return r.Metadata.Values(KeyAbstract)
}

// Subjects returns the subject values in export order.
func (r *Record) Subjects() []string {
	return r.Metadata.Values(KeySubject)
}

// ID is a repository identifier. The REST export writes item ids as JSON
// numbers, later exports as strings; both decode to the same text.
type ID string

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", data)
	}
	*id = ID(strings.TrimSpace(n.String()))
	return nil
}
