package youtube

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Data API errors.
var (
	// ErrUnauthorized indicates an invalid API key.
	ErrUnauthorized = errors.New("youtube: invalid api key")

	// ErrPlaylistNotFound indicates the playlist does not exist or is private.
	ErrPlaylistNotFound = errors.New("youtube: playlist not found")

	// ErrQuotaExceeded indicates the daily quota or rate limit was hit.
	ErrQuotaExceeded = errors.New("youtube: quota exceeded")
)

// WrapError converts a googleapi error into one of the sentinels above.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return errors.Join(ErrUnauthorized, err)
	case http.StatusNotFound:
		return errors.Join(ErrPlaylistNotFound, err)
	case http.StatusForbidden, http.StatusTooManyRequests:
		return errors.Join(ErrQuotaExceeded, err)
	default:
		return err
	}
}
