// Package domain holds the entities shared by every layer of
// sercha-captions: source documents and their subtitle text, indexed
// documents with their token lists, parsed search terms, verse records,
// settings and the sentinel errors adapters map to transport codes.
//
// The package imports only the standard library. Everything else in
// internal/ may import it; it imports nothing from internal/.
package domain
