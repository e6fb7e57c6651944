// Package application provides the application interface for ostiposter commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with Mock.
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            p, err := app.Poster()
//	            if err != nil {
//	                return err
//	            }
//	            _, err = p.Generate(cmd.Context())
//	            return err
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/pulibrary/ostiposter"
)

// Application provides what commands need from the running CLI.
type Application interface {
	// Poster returns a Poster configured from flags, environment and config
	// file. Extra options are applied last and override the configuration.
	Poster(opts ...ostiposter.Option) (*ostiposter.Poster, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
