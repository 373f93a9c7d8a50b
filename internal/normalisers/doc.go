// Package normalisers converts timed-text tracks into plain text.
//
// Each subpackage handles one format (WebVTT, SubRip, TTML, plain text) and
// implements driven.Normaliser. The Registry in this package picks the right
// one for a track and implements driven.SubtitleConverter.
package normalisers
