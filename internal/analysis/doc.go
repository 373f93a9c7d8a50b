// Package analysis turns raw text into index material.
//
// It provides the three pure building blocks the ingestion and search
// paths share:
//
//   - Normalize: case folding and diacritic stripping ("João" -> "joao")
//   - Tokenize: normalised, filtered, deduplicated index terms
//   - Fingerprint: a content digest used for change detection
//
// Tokenizer rules are versioned. Every persisted document records the
// version that produced its tokens, and Migrations describes how to step a
// document from one version to the next.
package analysis
