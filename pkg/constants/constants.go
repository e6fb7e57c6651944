// Package constants provides shared constants used throughout the ostiposter
// codebase: default file locations, permissions and timeouts that must stay
// consistent between the library and the CLI.
package constants

import "time"

// Default input and output locations, relative to the working directory.
// They mirror the layout the curation team keeps on disk.
const (
	// DefaultDataDir holds the repository export and the generated payload
	DefaultDataDir = "data"

	// DefaultRecordsFile is the DSpace export, resolved inside the data dir
	DefaultRecordsFile = "dataset_metadata_to_upload.json"

	// DefaultFormInput is the curated compliance spreadsheet, resolved as given
	DefaultFormInput = "form_input.csv"

	// DefaultOutputFile is the registry payload, resolved inside the data dir
	DefaultOutputFile = "osti.json"

	// ConfigFileName is the base name of the optional YAML config file
	ConfigFileName = ".ostiposter"
)

// DefaultHTTPTimeout is the standard timeout for registry requests.
const DefaultHTTPTimeout = 30 * time.Second

// FilePermissions is the mode of the written payload (rw-r--r--).
const FilePermissions = 0644

// Display limits
const (
	// MaxCellWidth is the widest a free-text table cell is rendered before truncation
	MaxCellWidth = 48
)
