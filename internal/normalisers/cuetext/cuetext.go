// Package cuetext holds the text clean-up shared by the subtitle normalisers.
package cuetext

import (
	"bytes"
	"html"
	"regexp"
	"strings"
)

var (
	// tagRegex matches markup tags and inline timestamps such as <c>, </i>
	// and <00:00:01.500>.
	tagRegex = regexp.MustCompile(`<[^>]*>`)

	// assRegex matches SSA/ASS override blocks like {\an8}.
	assRegex = regexp.MustCompile(`\{\\[^}]*\}`)

	spaceRegex = regexp.MustCompile(`[ \t\p{Zs}]+`)
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Lines splits content into lines after dropping a UTF-8 BOM and
// normalising line endings.
func Lines(content []byte) []string {
	content = bytes.TrimPrefix(content, bom)
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// StripMarkup removes tags, override blocks and entities from one line and
// squeezes runs of spaces.
func StripMarkup(line string) string {
	line = tagRegex.ReplaceAllString(line, "")
	line = assRegex.ReplaceAllString(line, "")
	line = html.UnescapeString(line)
	line = spaceRegex.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

// Join drops empty lines and collapses consecutive duplicates, which rolling
// auto-captions produce when a line is carried into the next cue.
func Join(lines []string) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == line {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// TrimmedPrefix reports whether content, ignoring a BOM and leading
// whitespace, starts with prefix.
func TrimmedPrefix(content []byte, prefix string) bool {
	content = bytes.TrimPrefix(content, bom)
	content = bytes.TrimLeft(content, " \t\r\n")
	return bytes.HasPrefix(content, []byte(prefix))
}
