package domain

// SourceDocument is an external content item, typically a video,
// whose subtitle track is indexed. It is never modified by ingestion.
type SourceDocument struct {
	// ID is the unique identifier, e.g. a video ID.
	ID string

	// SubtitleURL is where the timed-text track can be fetched.
	SubtitleURL string

	// Title is the human-readable title, when the catalog knows it.
	Title string

	// Metadata contains catalog-specific key-value pairs.
	Metadata map[string]any
}
