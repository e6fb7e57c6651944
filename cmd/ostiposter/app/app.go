// Package app provides the application context and dependency management
// for the ostiposter CLI: configuration, logging, and construction of the
// Poster the commands run.
package app

import (
	"github.com/rs/zerolog"

	"github.com/pulibrary/ostiposter"
	"github.com/pulibrary/ostiposter/internal/cmd/output"
	"github.com/pulibrary/ostiposter/internal/transport"
)

// App represents the ostiposter application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// submitter overrides the registry client built from config
	submitter ostiposter.Submitter
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured format, detected from the terminal
// when none is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Poster creates a Poster from the configuration. opts are applied last.
func (a *App) Poster(opts ...ostiposter.Option) (*ostiposter.Poster, error) {
	base := []ostiposter.Option{
		ostiposter.WithDataDir(a.config.DataDir),
		ostiposter.WithRecordsFile(a.config.RecordsFile),
		ostiposter.WithFormInput(a.config.FormInput),
		ostiposter.WithOutputFile(a.config.OutputFile),
		ostiposter.WithLogger(a.logger),
	}
	if s := a.Submitter(); s != nil {
		base = append(base, ostiposter.WithSubmitter(s))
	}

	return ostiposter.New(append(base, opts...)...)
}

// Submitter returns the registry client, or nil when no endpoint is configured.
func (a *App) Submitter() ostiposter.Submitter {
	if a.submitter != nil {
		return a.submitter
	}
	if a.config.OSTIEndpoint == "" {
		return nil
	}

	auth := transport.NewAuthenticator(a.config.OSTIUsername, a.config.OSTIPassword, a.config.OSTIToken)
	var clientOpts []transport.Option
	if a.config.OSTITimeout > 0 {
		clientOpts = append(clientOpts, transport.WithTimeout(a.config.OSTITimeout))
	}
	return transport.New(a.config.OSTIEndpoint, auth, clientOpts...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithSubmitter replaces the registry client (useful for testing).
func WithSubmitter(s ostiposter.Submitter) Option {
	return func(a *App) error {
		a.submitter = s
		return nil
	}
}
