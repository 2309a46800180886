// Package services holds the core orchestration between the recommendation
// and catalog adapters.
package services

import (
	"context"
	"fmt"

	"github.com/Agnik7/SuurAI/internal/core/domain"
	"github.com/Agnik7/SuurAI/internal/core/ports"
)

// Discovery coordinates mood-based recommendations and podcast detail
// lookups.
type Discovery struct {
	recommender ports.RecommendationProvider
	catalog     ports.PodcastCatalog
}

// NewDiscovery constructs a Discovery service.
func NewDiscovery(recommender ports.RecommendationProvider, catalog ports.PodcastCatalog) *Discovery {
	return &Discovery{
		recommender: recommender,
		catalog:     catalog,
	}
}

// Recommend fetches normalized recommendations for the given mood. Upstream
// failures propagate to the caller, which decides between an error view and
// the built-in sample set.
func (s *Discovery) Recommend(ctx context.Context, userMood string) ([]domain.Podcast, error) {
	podcasts, err := s.recommender.Recommend(ctx, userMood)
	if err != nil {
		return nil, fmt.Errorf("service: recommendation lookup failed: %w", err)
	}
	return podcasts, nil
}

// PodcastByName resolves a podcast and its episodes. A missing podcast
// surfaces as domain.ErrNotFound so callers can render a terminal
// "not found" view instead of a failure.
func (s *Discovery) PodcastByName(ctx context.Context, name string) (domain.PodcastDetail, error) {
	if name == "" {
		return domain.PodcastDetail{}, fmt.Errorf("service: podcast name cannot be empty")
	}
	detail, err := s.catalog.PodcastByName(ctx, name)
	if err != nil {
		return domain.PodcastDetail{}, fmt.Errorf("service: podcast lookup failed: %w", err)
	}
	return detail, nil
}
