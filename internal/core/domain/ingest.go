package domain

import "time"

// IngestMode identifies which workflow produced a report or event.
type IngestMode string

const (
	// IngestImport creates records for sources that have none. Never overwrites.
	IngestImport IngestMode = "import"

	// IngestUpdate refreshes existing records whose content hash changed. Never creates.
	IngestUpdate IngestMode = "update"

	// IngestReindex recomputes tokens from stored text under the current tokenizer.
	IngestReindex IngestMode = "reindex"
)

// EventKind is the type of an ingest event.
type EventKind int

const (
	// EventStarted is emitted once when a run begins. Count holds the item total.
	EventStarted EventKind = iota

	// EventCreated reports a newly written record.
	EventCreated

	// EventUpdated reports an overwritten record.
	EventUpdated

	// EventUnchanged reports a record skipped because its content hash matched.
	EventUnchanged

	// EventSkipped reports an item skipped by mode rules (exists on import,
	// missing on update, already current on reindex).
	EventSkipped

	// EventWarning reports a non-fatal problem, such as a record without content.
	EventWarning

	// EventFailed reports an item that failed and was skipped. Err is set.
	EventFailed

	// EventBatchCommitted reports a committed write batch. Count holds its size.
	EventBatchCommitted

	// EventFinished is emitted once when a run ends, successfully or not.
	EventFinished
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventCreated:
		return "created"
	case EventUpdated:
		return "updated"
	case EventUnchanged:
		return "unchanged"
	case EventSkipped:
		return "skipped"
	case EventWarning:
		return "warning"
	case EventFailed:
		return "failed"
	case EventBatchCommitted:
		return "batch_committed"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// IngestEvent is a progress or error notification from an ingest run.
type IngestEvent struct {
	RunID      string
	Mode       IngestMode
	Kind       EventKind
	DocumentID string
	Message    string
	Err        error

	// Batch is the 1-based batch number for EventBatchCommitted.
	Batch int

	// Count is the item total for EventStarted or the batch size for EventBatchCommitted.
	Count int
}

// IngestReport summarises a finished ingest run.
type IngestReport struct {
	RunID string
	Mode  IngestMode

	// Scanned is the number of sources or records examined.
	Scanned int

	Created   int
	Updated   int
	Unchanged int
	Skipped   int
	Warnings  int
	Failed    int

	// Batches is the number of committed write batches (reindex only).
	Batches int

	StartedAt  time.Time
	FinishedAt time.Time
}

// Writes returns the number of records written by the run.
func (r *IngestReport) Writes() int {
	return r.Created + r.Updated
}

// ReindexOptions configures a re-index run.
type ReindexOptions struct {
	// Force recomputes tokens even for records already at the current version.
	Force bool
}
