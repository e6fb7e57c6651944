// Package testutil writes data directories for command and integration tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pulibrary/ostiposter/pkg/constants"
	"github.com/pulibrary/ostiposter/pkg/osti"
)

// Export is a repository export holding the records "X1" and "X2".
const Export = `[
  {
    "id": "X1",
    "name": "Plasma Study",
    "handle": "88435/abc",
    "metadata": [
      {"key": "dc.contributor.author", "value": "A. Smith"},
      {"key": "dc.contributor.author", "value": "B. Lee"},
      {"key": "dc.subject", "value": "fusion"}
    ]
  },
  {
    "id": 2,
    "name": "Second Dataset",
    "handle": "88435/def",
    "metadata": [
      {"key": "dc.contributor.author", "value": "C. Wu"},
      {"key": "dc.description.abstract", "value": "Measurements."}
    ]
  }
]`

// FormInput is a valid form input joining both records of Export.
const FormInput = `DSpace ID,Sponsoring Organizations,DOE Contract,Datatype,Author
X1,DOE,DE-1234,GD,A. Smith
2,DOE,DE-5678,AS,C. Wu
`

// DataDir creates a data directory holding Export and a form input with
// the given content, and returns the directory and the form input path.
func DataDir(t testing.TB, formInput string) (dir, formPath string) {
	t.Helper()

	dir = t.TempDir()
	write(t, filepath.Join(dir, constants.DefaultRecordsFile), Export)

	formPath = filepath.Join(dir, constants.DefaultFormInput)
	write(t, formPath, formInput)
	return dir, formPath
}

func write(t testing.TB, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// Submitter records the payloads it is given.
type Submitter struct {
	mu       sync.Mutex
	Payloads [][]osti.Record
	Err      error
}

// Submit implements ostiposter.Submitter.
func (s *Submitter) Submit(_ context.Context, records []osti.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Payloads = append(s.Payloads, records)
	return nil
}

// Calls returns how many payloads were accepted.
func (s *Submitter) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Payloads)
}
