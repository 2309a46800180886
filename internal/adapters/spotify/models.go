package spotify

import (
	"time"

	"github.com/Agnik7/SuurAI/internal/core/domain"
)

// Wire types for the subset of the Spotify API the adapter consumes.

type spotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type spotifyShow struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Publisher     string         `json:"publisher"`
	TotalEpisodes int            `json:"total_episodes"`
	Images        []spotifyImage `json:"images"`
	ExternalURLs  struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type spotifyEpisode struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	DurationMs      int            `json:"duration_ms"`
	ReleaseDate     string         `json:"release_date"`
	AudioPreviewURL string         `json:"audio_preview_url"`
	Images          []spotifyImage `json:"images"`
	ExternalURLs    struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func mapShowToDomain(show spotifyShow) domain.Podcast {
	return domain.Podcast{
		ID:           show.ID,
		Name:         show.Name,
		Description:  show.Description,
		Publisher:    show.Publisher,
		ImageURL:     pickImageURL(show.Images),
		EpisodeCount: show.TotalEpisodes,
	}
}

func mapEpisodeToDomain(episode spotifyEpisode, podcastName string) domain.Episode {
	return domain.Episode{
		ID:               episode.ID,
		Title:            episode.Name,
		PodcastName:      podcastName,
		DurationMs:       episode.DurationMs,
		ReleaseDate:      parseReleaseDate(episode.ReleaseDate),
		AudioPreviewURL:  episode.AudioPreviewURL,
		ExternalEmbedURL: episode.ExternalURLs.Spotify,
		ImageURL:         pickImageURL(episode.Images),
	}
}

// pickImageURL prefers a medium-sized image (300..600px tall), falling back
// to the first entry, then to the shared placeholder artwork.
func pickImageURL(images []spotifyImage) string {
	for _, image := range images {
		if image.Height >= 300 && image.Height <= 600 && image.URL != "" {
			return image.URL
		}
	}
	if len(images) > 0 && images[0].URL != "" {
		return images[0].URL
	}
	return domain.FallbackImageURL
}

// parseReleaseDate tolerates Spotify's day, month, and year precisions.
func parseReleaseDate(value string) time.Time {
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
