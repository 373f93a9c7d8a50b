// Package youtube enumerates the videos of a playlist as source documents
// using the YouTube Data API v3 with an API key.
package youtube
