package domain

// Subtitle represents a raw timed-text track fetched for a source.
// It is the fetcher's output before conversion to plain text.
type Subtitle struct {
	// URL is the location the track was fetched from.
	URL string

	// MIMEType is the reported content type (e.g., "text/vtt").
	// May be empty when the server does not report one.
	MIMEType string

	// Content is the raw bytes.
	Content []byte
}
