package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/models"
	"go.uber.org/zap"
)

// RemoteSource resolves locations through a deployed discovery endpoint that
// speaks the same contract as the public /functions/v1/discover-location route.
type RemoteSource struct {
	Client   *http.Client
	Endpoint string
	APIKey   string
	logger   *zap.Logger
}

// NewRemoteSource creates a RemoteSource. The per-request bound comes from the
// caller's context, so the client itself carries no timeout.
func NewRemoteSource(endpoint, apiKey string, logger *zap.Logger) *RemoteSource {
	return &RemoteSource{
		Client:   &http.Client{},
		Endpoint: endpoint,
		APIKey:   apiKey,
		logger:   logger,
	}
}

type remoteError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Resolve implements Source. The endpoint receives the display label, as a
// client would have typed it.
func (r *RemoteSource) Resolve(ctx context.Context, key, label string) (models.DiscoveryResult, error) {
	if label == "" {
		label = key
	}
	jsonBody, err := json.Marshal(models.DiscoverRequest{Location: label})
	if err != nil {
		return models.DiscoveryResult{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return models.DiscoveryResult{}, fmt.Errorf("failed to build discovery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.APIKey)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.DiscoveryResult{}, errs.Timeout("Request timed out. Please try again.")
		}
		return models.DiscoveryResult{}, errs.Unavailable("failed to send request to discovery service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		r.logger.Warn("discovery service returned non-200 status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(bodyBytes)),
		)
		var re remoteError
		_ = json.Unmarshal(bodyBytes, &re)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && re.Error != "" {
			return models.DiscoveryResult{}, errs.Validation(re.Error)
		}
		return models.DiscoveryResult{}, errs.Unavailable(
			fmt.Sprintf("Failed to fetch location data (%d)", resp.StatusCode), nil)
	}

	var result models.DiscoveryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.DiscoveryResult{}, errs.Unavailable("Invalid response format from server", err)
	}
	return result, nil
}
