// Package ttml extracts caption text from TTML and YouTube timedtext (srv3)
// documents.
package ttml

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-captions/internal/normalisers/cuetext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// paragraphs selects caption paragraphs whatever their namespace prefix.
const paragraphs = "//*[local-name()='p']"

// sniffWindow is how far into the content Sniff looks for a root element.
const sniffWindow = 1024

// Normaliser handles TTML.
type Normaliser struct{}

// New creates a TTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name identifies the format.
func (n *Normaliser) Name() string { return "ttml" }

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"application/ttml+xml", "application/xml", "text/xml"}
}

// SupportedExtensions returns the URL extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".ttml", ".dfxp", ".xml", ".srv3"}
}

// Sniff looks for a <tt> or <timedtext> root near the start.
func (n *Normaliser) Sniff(content []byte) bool {
	head := content
	if len(head) > sniffWindow {
		head = head[:sniffWindow]
	}
	return bytes.Contains(head, []byte("<tt")) || bytes.Contains(head, []byte("<timedtext"))
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 60
}

// Normalise returns the text of every paragraph in document order.
// <br/> becomes a line break; spans are inlined.
func (n *Normaliser) Normalise(_ context.Context, sub *domain.Subtitle) (string, error) {
	if sub == nil {
		return "", domain.ErrInvalidInput
	}

	root, err := xmlquery.Parse(bytes.NewReader(sub.Content))
	if err != nil {
		return "", fmt.Errorf("parse ttml: %w", err)
	}
	nodes, err := xmlquery.QueryAll(root, paragraphs)
	if err != nil {
		return "", fmt.Errorf("query ttml: %w", err)
	}

	var lines []string
	for _, p := range nodes {
		var b strings.Builder
		collectText(&b, p)
		for _, line := range strings.Split(b.String(), "\n") {
			lines = append(lines, cuetext.StripMarkup(line))
		}
	}
	return cuetext.Join(lines), nil
}

func collectText(b *strings.Builder, n *xmlquery.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			b.WriteString(child.Data)
		case xmlquery.ElementNode:
			if child.Data == "br" {
				b.WriteByte('\n')
				continue
			}
			collectText(b, child)
		}
	}
}
