package services

import "github.com/Agnik7/SuurAI/internal/core/domain"

// SamplePodcasts is the fixed offline dataset substituted when the
// recommendation service is unreachable, so navigation stays usable.
func SamplePodcasts() []domain.Podcast {
	return []domain.Podcast{
		{
			ID:              "sample-1",
			Name:            "Tech Forward",
			Description:     "Exploring how AI is transforming workplace productivity and the tools that are changing how we work.",
			Publisher:       "Sarah Chen",
			ImageURL:        "https://images.unsplash.com/photo-1589492477829-5e65395b66cc?w=300&h=300&fit=crop",
			EpisodeCount:    48,
			PopularityScore: 92,
		},
		{
			ID:              "sample-2",
			Name:            "Leadership Insights",
			Description:     "Strategies for creating teams that thrive under pressure and adapt to change effectively.",
			Publisher:       "Marcus Rodriguez",
			ImageURL:        "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=300&h=300&fit=crop",
			EpisodeCount:    61,
			PopularityScore: 88,
		},
		{
			ID:              "sample-3",
			Name:            "Wellness Today",
			Description:     "How to start your day with intention and create morning habits that boost mental clarity.",
			Publisher:       "Dr. Emma Thompson",
			ImageURL:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=300&fit=crop",
			EpisodeCount:    35,
			PopularityScore: 85,
		},
		{
			ID:              "sample-4",
			Name:            "Psychology Deep Dive",
			Description:     "Understanding the neurological mechanisms behind habit formation and how to leverage them.",
			Publisher:       "Prof. David Kim",
			ImageURL:        "https://images.unsplash.com/photo-1559757175-0eb30cd8c063?w=300&h=300&fit=crop",
			EpisodeCount:    72,
			PopularityScore: 90,
		},
		{
			ID:              "sample-5",
			Name:            "Innovation Lab",
			Description:     "Techniques and frameworks for approaching complex problems with creativity and systematic thinking.",
			Publisher:       "Alex Morgan",
			ImageURL:        "https://images.unsplash.com/photo-1552664730-d307ca884978?w=300&h=300&fit=crop",
			EpisodeCount:    29,
			PopularityScore: 87,
		},
	}
}
