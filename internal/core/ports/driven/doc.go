// Package driven lists what the core needs from the outside world.
//
// Ingest cannot run without a SourceCatalog (manifest or YouTube
// playlist), a ContentFetcher, a SubtitleConverter and an IndexStore.
// Settings come from a ConfigStore.
//
// VerseStore and IngestObserver may be nil. Without a VerseStore the
// verses corpus reports domain.ErrSearchUnavailable; without an
// observer ingest runs silently.
//
// Adapters, connectors and normalisers implement these interfaces; this
// package depends on domain alone.
package driven
