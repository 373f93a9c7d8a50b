package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.SourceCatalog = (*Catalog)(nil)

// Catalog lists playlist videos.
type Catalog struct {
	cfg     Config
	service *ytapi.Service
}

// NewCatalog validates cfg and builds the API client.
func NewCatalog(ctx context.Context, cfg Config, opts ...option.ClientOption) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(cfg.Endpoint))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := ytapi.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Catalog{cfg: cfg, service: service}, nil
}

// Name identifies the catalog.
func (c *Catalog) Name() string {
	return "youtube:" + c.cfg.PlaylistID
}

// List pages through the playlist in playlist order. Deleted and private
// entries, which carry no video ID, are skipped.
func (c *Catalog) List(ctx context.Context) ([]domain.SourceDocument, error) {
	var sources []domain.SourceDocument
	seen := make(map[string]bool)

	call := c.service.PlaylistItems.
		List([]string{"snippet", "contentDetails"}).
		PlaylistId(c.cfg.PlaylistID).
		MaxResults(pageSize)

	err := call.Pages(ctx, func(page *ytapi.PlaylistItemListResponse) error {
		for _, item := range page.Items {
			src, ok := c.toSource(item)
			if !ok || seen[src.ID] {
				continue
			}
			seen[src.ID] = true
			sources = append(sources, src)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list playlist %s: %w", c.cfg.PlaylistID, WrapError(err))
	}
	return sources, nil
}

func (c *Catalog) toSource(item *ytapi.PlaylistItem) (domain.SourceDocument, bool) {
	var videoID, title string
	metadata := map[string]any{"playlist_id": c.cfg.PlaylistID}

	if item.ContentDetails != nil {
		videoID = item.ContentDetails.VideoId
		if item.ContentDetails.VideoPublishedAt != "" {
			metadata["published_at"] = item.ContentDetails.VideoPublishedAt
		}
	}
	if item.Snippet != nil {
		title = item.Snippet.Title
		if videoID == "" && item.Snippet.ResourceId != nil {
			videoID = item.Snippet.ResourceId.VideoId
		}
		if item.Snippet.VideoOwnerChannelTitle != "" {
			metadata["channel"] = item.Snippet.VideoOwnerChannelTitle
		}
		metadata["position"] = item.Snippet.Position
	}
	if videoID == "" {
		return domain.SourceDocument{}, false
	}

	return domain.SourceDocument{
		ID:          videoID,
		SubtitleURL: c.cfg.subtitleURL(videoID),
		Title:       title,
		Metadata:    metadata,
	}, true
}
