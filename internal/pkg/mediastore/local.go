package mediastore

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LocalStore saves decoded data URIs on the local filesystem. Used in
// development when no media host is configured; the server serves the
// directory under /uploads.
type LocalStore struct {
	basePath string
	baseURL  string
	logger   zerolog.Logger
}

// NewLocalStore creates a LocalStore rooted at basePath.
func NewLocalStore(basePath, baseURL string, logger zerolog.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local media storage directory ensured")

	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}, nil
}

// Upload decodes a data URI and writes it under a generated filename
func (s *LocalStore) Upload(ctx context.Context, dataURI string) (string, error) {
	payload := dataURI
	ext := ".bin"

	// data:image/png;base64,....
	if strings.HasPrefix(dataURI, "data:") {
		parts := strings.SplitN(dataURI, ",", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("malformed data URI")
		}
		payload = parts[1]
		meta := strings.TrimPrefix(parts[0], "data:")
		mime, _, _ := strings.Cut(meta, ";")
		if _, subtype, ok := strings.Cut(mime, "/"); ok && subtype != "" {
			ext = "." + subtype
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode image payload: %w", err)
	}

	filename := uuid.New().String() + ext
	dstPath := filepath.Join(s.basePath, filename)

	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return s.baseURL + "/" + filename, nil
}

// Delete removes a stored file by its asset ID (filename without extension)
func (s *LocalStore) Delete(ctx context.Context, assetID string) error {
	if assetID == "" {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(s.basePath, assetID+".*"))
	if err != nil {
		return fmt.Errorf("failed to locate media file: %w", err)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove media file: %w", err)
		}
	}
	return nil
}
