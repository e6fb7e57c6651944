package osti

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pulibrary/ostiposter/pkg/constants"
	"github.com/pulibrary/ostiposter/pkg/errors"
)

// Indent is the indentation used for the payload file.
const Indent = "    "

// Marshal encodes records as the registry payload: a JSON array indented
// with four spaces and terminated by a newline. HTML characters are not
// escaped so titles and abstracts are carried verbatim.
func Marshal(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes records to w.
func Write(w io.Writer, records []Record) error {
	data, err := Marshal(records)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile writes the payload to path through a temporary file in the same
// directory, so a failed write never leaves a truncated payload behind.
func WriteFile(path string, records []Record) error {
	data, err := Marshal(records)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		cleanup()
		return errors.WrapIO("write", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Read decodes a payload previously produced by Write.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return records, nil
}

// ReadFile decodes the payload stored at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	var records []Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return records, nil
}
