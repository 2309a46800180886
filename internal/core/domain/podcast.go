package domain

import "errors"

// ErrNotFound indicates a requested entity does not exist upstream.
var ErrNotFound = errors.New("domain: not found")

// FallbackImageURL is the artwork used whenever a source record carries no
// usable image. Every Podcast and Episode leaving the adapters has a
// non-empty ImageURL.
const FallbackImageURL = "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop"

// Podcast is a normalized recommendation record. All fields are populated:
// adapters substitute deterministic defaults for anything the source omits.
type Podcast struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Publisher       string `json:"publisher"`
	ImageURL        string `json:"imageUrl"`
	EpisodeCount    int    `json:"episodeCount"`
	PopularityScore int    `json:"popularityScore"` // 0..100
}
