package dspace

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pulibrary/ostiposter/pkg/errors"
)

// Load decodes a repository export: a JSON array of items.
func Load(r io.Reader) (*RecordSet, error) {
	return load(r, "")
}

// LoadFile decodes the repository export stored at path.
func LoadFile(path string) (*RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	return load(f, path)
}

func load(r io.Reader, name string) (*RecordSet, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WrapParse("json", name, err)
	}
	return NewRecordSet(records), nil
}
