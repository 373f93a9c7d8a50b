// Package connectors holds the driven adapters that reach outside the
// process for ingest input: catalogs that enumerate source documents and
// the HTTP fetcher that downloads their subtitle tracks.
//
//   - httpfetch: rate-limited, retrying subtitle downloader
//   - manifest: YAML file catalog
//   - youtube: playlist catalog backed by the YouTube Data API
package connectors
