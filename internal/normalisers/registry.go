package normalisers

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

// FallbackPriority is the highest priority a fallback normaliser may use.
// Fallbacks are only chosen once no format-specific normaliser matches.
const FallbackPriority = 9

// Ensure Registry implements the interface.
var _ driven.SubtitleConverter = (*Registry)(nil)

// Registry dispatches tracks to the best matching normaliser.
//
// Selection order:
//  1. a format normaliser registered for the MIME type
//  2. a format normaliser registered for the URL extension
//  3. a format normaliser whose Sniff accepts the content
//  4. a fallback normaliser matching MIME type or content
//
// Ties are broken by Priority.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates a registry holding the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, n)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// SupportedMIMETypes returns every MIME type some normaliser accepts.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var types []string
	for _, n := range r.normalisers {
		for _, mt := range n.SupportedMIMETypes() {
			if !seen[mt] {
				seen[mt] = true
				types = append(types, mt)
			}
		}
	}
	sort.Strings(types)
	return types
}

// Select returns the normaliser that Convert would use.
func (r *Registry) Select(sub *domain.Subtitle) (driven.Normaliser, error) {
	if sub == nil {
		return nil, domain.ErrInvalidInput
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	mimeType := strings.ToLower(strings.TrimSpace(sub.MIMEType))
	ext := extension(sub.URL)

	for _, n := range r.normalisers {
		if !isFallback(n) && mimeType != "" && contains(n.SupportedMIMETypes(), mimeType) {
			return n, nil
		}
	}
	for _, n := range r.normalisers {
		if !isFallback(n) && ext != "" && contains(n.SupportedExtensions(), ext) {
			return n, nil
		}
	}
	for _, n := range r.normalisers {
		if !isFallback(n) && n.Sniff(sub.Content) {
			return n, nil
		}
	}
	for _, n := range r.normalisers {
		if isFallback(n) && (contains(n.SupportedMIMETypes(), mimeType) || n.Sniff(sub.Content)) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: no normaliser for %q (%s)", domain.ErrUnsupportedType, mimeType, sub.URL)
}

// Convert selects a normaliser and returns its plain text. Every failure
// wraps domain.ErrConversionFailed.
func (r *Registry) Convert(ctx context.Context, sub *domain.Subtitle) (string, error) {
	n, err := r.Select(sub)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrConversionFailed, err)
	}
	text, err := n.Normalise(ctx, sub)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrConversionFailed, n.Name(), err)
	}
	return text, nil
}

func isFallback(n driven.Normaliser) bool {
	return n.Priority() <= FallbackPriority
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// extension returns the lowercased path extension of rawURL, without query.
func extension(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	return strings.ToLower(path.Ext(p))
}
