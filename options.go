package ostiposter

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pulibrary/ostiposter/pkg/constants"
)

// Option is a function that configures a Poster
type Option func(*config) error

// config holds the file layout and collaborators of a Poster.
type config struct {
	dataDir     string
	recordsFile string // relative names resolve inside dataDir
	formInput   string // resolved as given
	outputFile  string // relative names resolve inside dataDir
	submitter   Submitter
	logger      *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		dataDir:     constants.DefaultDataDir,
		recordsFile: constants.DefaultRecordsFile,
		formInput:   constants.DefaultFormInput,
		outputFile:  constants.DefaultOutputFile,
	}
}

// recordsPath returns the location of the repository export.
func (c *config) recordsPath() string {
	return inDataDir(c.dataDir, c.recordsFile)
}

// outputPath returns the location of the registry payload.
func (c *config) outputPath() string {
	return inDataDir(c.dataDir, c.outputFile)
}

func inDataDir(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// WithDataDir sets the directory holding the repository export and the payload.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		if dir != "" {
			c.dataDir = dir
		}
		return nil
	}
}

// WithRecordsFile sets the repository export file name, relative to the data dir
// unless absolute.
func WithRecordsFile(name string) Option {
	return func(c *config) error {
		if name != "" {
			c.recordsFile = name
		}
		return nil
	}
}

// WithFormInput sets the path of the curated form input CSV.
func WithFormInput(path string) Option {
	return func(c *config) error {
		if path != "" {
			c.formInput = path
		}
		return nil
	}
}

// WithOutputFile sets the payload file name, relative to the data dir unless absolute.
func WithOutputFile(name string) Option {
	return func(c *config) error {
		if name != "" {
			c.outputFile = name
		}
		return nil
	}
}

// WithSubmitter configures the registry client used by Submit.
func WithSubmitter(s Submitter) Option {
	return func(c *config) error {
		c.submitter = s
		return nil
	}
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
