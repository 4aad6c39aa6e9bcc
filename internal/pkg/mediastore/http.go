package mediastore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPStore talks to the external media host over its REST API.
type HTTPStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  zerolog.Logger
}

// HTTPConfig holds configuration for the media host client
type HTTPConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewHTTPStore creates a media host client with a bounded request timeout.
func NewHTTPStore(cfg HTTPConfig, logger zerolog.Logger) *HTTPStore {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPStore{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type uploadRequest struct {
	File string `json:"file"`
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// Upload sends a data URI to the media host and returns the hosted URL
func (s *HTTPStore) Upload(ctx context.Context, dataURI string) (string, error) {
	body, err := json.Marshal(uploadRequest{File: dataURI})
	if err != nil {
		return "", fmt.Errorf("failed to encode upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/upload", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("media host upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("media host upload returned status %d", resp.StatusCode)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.URL, nil
}

// Delete removes an asset from the media host by its public ID
func (s *HTTPStore) Delete(ctx context.Context, assetID string) error {
	if assetID == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/assets/"+assetID, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("media host delete failed: %w", err)
	}
	defer resp.Body.Close()

	// A missing asset is fine; the sweeper retries deletions on its next run
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("media host delete returned status %d", resp.StatusCode)
	}

	s.logger.Debug().Str("assetId", assetID).Msg("Asset deleted from media host")
	return nil
}
