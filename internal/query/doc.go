// Package query parses user search strings into typed terms and evaluates
// them against normalised text.
//
// Quoted spans ('...' or "...") become exact terms that must match whole
// words; everything else becomes free terms that match as substrings.
// A record matches a query only when it matches every term.
package query
