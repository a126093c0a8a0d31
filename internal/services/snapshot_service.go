// internal/services/snapshot_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-admin/internal/models"
)

// SnapshotService reads the static catalog document that seeds the store.
type SnapshotService struct {
	client *http.Client
}

func NewSnapshotService(client *http.Client) *SnapshotService {
	if client == nil {
		// No client timeout; the caller's context bounds the fetch.
		client = &http.Client{}
	}
	return &SnapshotService{client: client}
}

// Load reads the snapshot from a file path or an http(s) URL.
func (s *SnapshotService) Load(ctx context.Context, source string) (models.CatalogState, error) {
	var state models.CatalogState

	rc, err := s.open(ctx, source)
	if err != nil {
		return state, err
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(&state); err != nil {
		return state, fmt.Errorf("failed to decode snapshot %s: %w", source, err)
	}
	if state.Products == nil {
		state.Products = []models.Product{}
	}
	if state.Categories == nil {
		state.Categories = []models.Category{}
	}
	return state, nil
}

// Seed loads the snapshot into store. Failures are logged and leave the
// catalog empty; there is no retry.
func (s *SnapshotService) Seed(ctx context.Context, store *CatalogStore, source string) {
	state, err := s.Load(ctx, source)
	if err != nil {
		logrus.WithError(err).WithField("source", source).Warn("Catalog snapshot not loaded")
		return
	}

	store.Seed(state)
	logrus.WithFields(logrus.Fields{
		"source":     source,
		"products":   len(state.Products),
		"categories": len(state.Categories),
	}).Info("Catalog snapshot loaded")
}

func (s *SnapshotService) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if source == "" {
		return nil, fmt.Errorf("snapshot source not configured")
	}

	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch snapshot: unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
