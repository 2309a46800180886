package ports

import (
	"context"

	"github.com/Agnik7/SuurAI/internal/core/domain"
)

// RecommendationProvider turns a free-text mood into an ordered sequence of
// normalized podcasts.
type RecommendationProvider interface {
	Recommend(ctx context.Context, userMood string) ([]domain.Podcast, error)
}

// PodcastCatalog resolves a podcast by name and lists its episodes.
type PodcastCatalog interface {
	PodcastByName(ctx context.Context, name string) (domain.PodcastDetail, error)
}
