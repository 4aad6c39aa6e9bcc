package mediastore

import (
	"context"
	"net/url"
	"path"
	"strings"
)

// Store is the contract with the external media host. Images arrive as
// base64 data URIs from the frontend and are referenced by the URL the
// host returns.
type Store interface {
	// Upload stores an image given as a data URI and returns its public URL
	Upload(ctx context.Context, dataURI string) (string, error)

	// Delete removes an asset by its public ID
	Delete(ctx context.Context, assetID string) error
}

// PublicID derives the media host's asset ID from a stored URL: strip the
// query string, take the last path segment, drop the extension. URLs not
// following that shape will produce a wrong ID; the host contract fixes
// the shape.
func PublicID(assetURL string) string {
	if assetURL == "" {
		return ""
	}
	if u, err := url.Parse(assetURL); err == nil {
		assetURL = u.Path
	}
	segment := path.Base(assetURL)
	if idx := strings.LastIndex(segment, "."); idx > 0 {
		segment = segment[:idx]
	}
	return segment
}
