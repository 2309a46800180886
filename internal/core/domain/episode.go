package domain

import "time"

// Episode is a single playable item within a podcast.
type Episode struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	PodcastName      string    `json:"podcastName"`
	DurationMs       int       `json:"durationMs"`
	ReleaseDate      time.Time `json:"releaseDate"`
	AudioPreviewURL  string    `json:"audioPreviewUrl,omitempty"`
	ExternalEmbedURL string    `json:"externalEmbedUrl,omitempty"`
	ImageURL         string    `json:"imageUrl,omitempty"`
}

// PodcastDetail bundles a podcast with its episode listing.
type PodcastDetail struct {
	Podcast  Podcast   `json:"podcast"`
	Episodes []Episode `json:"episodes"`
}
