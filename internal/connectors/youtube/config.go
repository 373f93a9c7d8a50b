package youtube

import (
	"errors"
	"net/url"
	"strings"
)

// IDPlaceholder is replaced by the video ID in SubtitleURLTemplate.
const IDPlaceholder = "{id}"

// pageSize is the maximum accepted by playlistItems.list.
const pageSize = 50

// ErrMissingConfig indicates a required setting is empty.
var ErrMissingConfig = errors.New("youtube: missing configuration")

// Config holds catalog settings.
type Config struct {
	// APIKey authenticates Data API requests.
	APIKey string

	// PlaylistID is the playlist to enumerate.
	PlaylistID string

	// SubtitleURLTemplate builds each track URL, e.g.
	// "https://captions.example.org/{id}.vtt".
	SubtitleURLTemplate string

	// Endpoint overrides the API base URL.
	Endpoint string
}

// Validate checks required fields.
func (c Config) Validate() error {
	switch {
	case c.APIKey == "":
		return errors.Join(ErrMissingConfig, errors.New("api_key is required"))
	case c.PlaylistID == "":
		return errors.Join(ErrMissingConfig, errors.New("playlist_id is required"))
	case !strings.Contains(c.SubtitleURLTemplate, IDPlaceholder):
		return errors.Join(ErrMissingConfig, errors.New("subtitle_url_template must contain "+IDPlaceholder))
	}
	return nil
}

// subtitleURL expands the template for one video.
func (c Config) subtitleURL(videoID string) string {
	return strings.ReplaceAll(c.SubtitleURLTemplate, IDPlaceholder, url.PathEscape(videoID))
}
