package ostiposter

import (
	"sync"

	"github.com/pulibrary/ostiposter/pkg/osti"
)

// Hook function types for pipeline events
type (
	// RecordBuiltHook is called for each record of a successful run, in row order
	RecordBuiltHook func(index int, record osti.Record)

	// RecordsWrittenHook is called after the payload file has been written
	RecordsWrittenHook func(path string, count int)
)

// hooks manages event callbacks for pipeline runs
type hooks struct {
	mu               sync.RWMutex
	onRecordBuilt    []RecordBuiltHook
	onRecordsWritten []RecordsWrittenHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRecordBuilt registers a callback for each built record
func (h *hooks) OnRecordBuilt(fn RecordBuiltHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecordBuilt = append(h.onRecordBuilt, fn)
}

// OnRecordsWritten registers a callback for when the payload is written
func (h *hooks) OnRecordsWritten(fn RecordsWrittenHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecordsWritten = append(h.onRecordsWritten, fn)
}

// triggerRun fires the hooks of a completed run. Nothing fires for a
// failed run, so observers see the same all-or-nothing result as callers.
func (h *hooks) triggerRun(path string, records []osti.Record) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for i, rec := range records {
		for _, hook := range h.onRecordBuilt {
			hook(i, rec)
		}
	}
	for _, hook := range h.onRecordsWritten {
		hook(path, len(records))
	}
}
