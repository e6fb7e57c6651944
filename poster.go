// Package ostiposter combines a DSpace export with the curated compliance
// spreadsheet into the dataset payload for the OSTI registry, and submits
// that payload.
//
// Example usage:
//
//	p, err := ostiposter.New(ostiposter.WithDataDir("data"))
//	if err != nil {
//	    return err
//	}
//	records, err := p.Generate(ctx)
package ostiposter

import (
	"context"
	"os"

	"github.com/pulibrary/ostiposter/pkg/compliance"
	"github.com/pulibrary/ostiposter/pkg/dspace"
	"github.com/pulibrary/ostiposter/pkg/errors"
	"github.com/pulibrary/ostiposter/pkg/logging"
	"github.com/pulibrary/ostiposter/pkg/osti"
	"github.com/pulibrary/ostiposter/pkg/pipeline"
)

// Submitter delivers a payload to the registry.
type Submitter interface {
	Submit(ctx context.Context, records []osti.Record) error
}

// Poster runs the merge for one data directory.
type Poster struct {
	config *config
	hooks  *hooks
}

// New creates a Poster with the given options. The data directory must exist.
func New(opts ...Option) (*Poster, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errors.NewConfigError("poster", "applying options", err)
		}
	}

	info, err := os.Stat(cfg.dataDir)
	if err != nil {
		return nil, errors.WrapIO("stat", cfg.dataDir, err)
	}
	if !info.IsDir() {
		return nil, errors.NewIOError("stat", cfg.dataDir, errors.New("not a directory"))
	}

	return &Poster{config: cfg, hooks: newHooks()}, nil
}

// DataDir returns the data directory.
func (p *Poster) DataDir() string { return p.config.dataDir }

// RecordsPath returns the repository export location.
func (p *Poster) RecordsPath() string { return p.config.recordsPath() }

// FormInputPath returns the form input location.
func (p *Poster) FormInputPath() string { return p.config.formInput }

// OutputPath returns the payload location.
func (p *Poster) OutputPath() string { return p.config.outputPath() }

// OnRecordBuilt registers a callback fired for each record of a successful run.
func (p *Poster) OnRecordBuilt(fn RecordBuiltHook) { p.hooks.OnRecordBuilt(fn) }

// OnRecordsWritten registers a callback fired once the payload is on disk.
func (p *Poster) OnRecordsWritten(fn RecordsWrittenHook) { p.hooks.OnRecordsWritten(fn) }

// LoadFormInput reads the form input CSV.
func (p *Poster) LoadFormInput() (*compliance.Table, error) {
	return compliance.ReadFile(p.config.formInput)
}

// LoadRecords reads the repository export.
func (p *Poster) LoadRecords() (*dspace.RecordSet, error) {
	return dspace.LoadFile(p.config.recordsPath())
}

// Build loads both inputs and merges them without writing anything.
func (p *Poster) Build(ctx context.Context) ([]osti.Record, error) {
	ctx = p.withLogger(ctx)
	logger := logging.FromContext(ctx)

	table, err := p.LoadFormInput()
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", p.config.formInput).Int("rows", table.Len()).Msg("Loaded form input")

	records, err := p.LoadRecords()
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", p.config.recordsPath()).Int("records", records.Len()).Msg("Loaded repository export")

	return pipeline.RunContext(ctx, table, records)
}

// Generate builds the records and writes the payload file. Nothing is
// written when any step fails.
func (p *Poster) Generate(ctx context.Context) ([]osti.Record, error) {
	ctx = p.withLogger(ctx)

	records, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}

	path := p.config.outputPath()
	if err := osti.WriteFile(path, records); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().
		Str("file", path).
		Int("records", len(records)).
		Msg("Wrote registry payload")

	p.hooks.triggerRun(path, records)
	return records, nil
}

// RunPipeline generates the payload file.
func (p *Poster) RunPipeline(ctx context.Context) error {
	_, err := p.Generate(ctx)
	return err
}

// ReadPayload reads a previously generated payload file.
func (p *Poster) ReadPayload() ([]osti.Record, error) {
	return osti.ReadFile(p.config.outputPath())
}

// Submit sends records through the configured Submitter.
func (p *Poster) Submit(ctx context.Context, records []osti.Record) error {
	if p.config.submitter == nil {
		return errors.NewConfigError("submit", "no registry client configured", errors.ErrNotConfigured)
	}
	ctx = p.withLogger(ctx)

	if err := p.config.submitter.Submit(ctx, records); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Int("records", len(records)).Msg("Submitted payload to registry")
	return nil
}

func (p *Poster) withLogger(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if p.config.logger == nil || logging.HasLogger(ctx) {
		return ctx
	}
	return logging.WithLogger(ctx, p.config.logger)
}
