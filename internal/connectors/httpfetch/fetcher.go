package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.ContentFetcher = (*Fetcher)(nil)

// Fetcher downloads subtitle tracks.
type Fetcher struct {
	cfg     Config
	client  *http.Client
	limiter *RateLimiter
	now     func() time.Time
}

// New creates a fetcher. A nil client uses one with cfg.Timeout.
func New(cfg Config, client *http.Client) *Fetcher {
	cfg = cfg.withDefaults()
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Fetcher{
		cfg:     cfg,
		client:  client,
		limiter: NewRateLimiter(cfg.RatePerSecond, cfg.Burst),
		now:     time.Now,
	}
}

// Fetch downloads url. Every failure wraps domain.ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.Subtitle, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty url", domain.ErrFetchFailed)
	}

	sub, err := backoff(ctx, f.cfg, func() (*domain.Subtitle, error) {
		return f.fetchOnce(ctx, url)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFetchFailed, url, err)
	}
	return sub, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*domain.Subtitle, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, permanent(ctx.Err())
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		statusErr := &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), f.now()),
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			f.limiter.Pause(statusErr.RetryAfter)
		}
		return nil, statusErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.cfg.MaxBodyBytes {
		return nil, permanent(fmt.Errorf("body exceeds %d bytes", f.cfg.MaxBodyBytes))
	}

	return &domain.Subtitle{
		URL:      url,
		MIMEType: mediaType(resp.Header.Get("Content-Type")),
		Content:  body,
	}, nil
}

// mediaType strips parameters such as charset.
func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mt
}
