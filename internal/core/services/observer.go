package services

import (
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/logger"
)

var (
	_ driven.IngestObserver = LogObserver{}
	_ driven.IngestObserver = NopObserver{}
	_ driven.IngestObserver = ObserverFunc(nil)
)

// LogObserver writes ingest events through the process logger.
// Failures are always printed; everything else only in verbose mode.
type LogObserver struct{}

// Observe logs one event.
func (LogObserver) Observe(e domain.IngestEvent) {
	switch e.Kind {
	case domain.EventStarted:
		logger.Info("%s run %s started: %d items", e.Mode, e.RunID, e.Count)
	case domain.EventFailed:
		logger.Error("%s %s: %v", e.Mode, e.DocumentID, e.Err)
	case domain.EventWarning:
		logger.Warn("%s %s: %s", e.Mode, e.DocumentID, e.Message)
	case domain.EventBatchCommitted:
		logger.Info("%s batch %d committed (%d records)", e.Mode, e.Batch, e.Count)
	case domain.EventFinished:
		if e.Err != nil {
			logger.Error("%s run %s aborted: %v", e.Mode, e.RunID, e.Err)
			return
		}
		logger.Info("%s run %s finished: %d writes", e.Mode, e.RunID, e.Count)
	default:
		if e.Message != "" {
			logger.Debug("%s %s %s (%s)", e.Mode, e.Kind, e.DocumentID, e.Message)
			return
		}
		logger.Debug("%s %s %s", e.Mode, e.Kind, e.DocumentID)
	}
}

// NopObserver discards events.
type NopObserver struct{}

// Observe does nothing.
func (NopObserver) Observe(domain.IngestEvent) {}

// ObserverFunc adapts a function to driven.IngestObserver.
type ObserverFunc func(domain.IngestEvent)

// Observe calls f(e).
func (f ObserverFunc) Observe(e domain.IngestEvent) {
	f(e)
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []driven.IngestObserver

// Observe forwards e to every observer.
func (m MultiObserver) Observe(e domain.IngestEvent) {
	for _, o := range m {
		if o != nil {
			o.Observe(e)
		}
	}
}
