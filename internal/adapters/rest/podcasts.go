package rest

import (
	"errors"
	"log"
	"net/http"

	"github.com/Agnik7/SuurAI/internal/core/domain"
	"github.com/Agnik7/SuurAI/internal/core/services"
	"github.com/Agnik7/SuurAI/internal/worker"
)

type recommendationsResponse struct {
	Podcasts []domain.Podcast `json:"podcasts"`
	// Fallback marks responses served from the built-in sample set after an
	// upstream failure. The UI shows a retryable notice but stays usable.
	Fallback bool   `json:"fallback"`
	Message  string `json:"message,omitempty"`
}

// Recommendations handles GET /podcasts?user_mood=...
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userMood := r.URL.Query().Get("user_mood")
	if userMood == "" {
		writeError(w, http.StatusBadRequest, "user_mood is required")
		return
	}

	podcasts, err := h.svc.Recommend(r.Context(), userMood)
	if err != nil {
		log.Printf("WARN rest: recommendations unavailable, serving sample set: %v", err)
		writeJSON(w, http.StatusOK, recommendationsResponse{
			Podcasts: services.SamplePodcasts(),
			Fallback: true,
			Message:  "Recommendations are temporarily unavailable. Showing sample podcasts.",
		})
		return
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{Podcasts: podcasts})
}

// PodcastEpisodes handles GET /podcasts/episodes?podcast_name=...
func (h *Handler) PodcastEpisodes(w http.ResponseWriter, r *http.Request) {
	podcastName := r.URL.Query().Get("podcast_name")
	if podcastName == "" {
		writeError(w, http.StatusBadRequest, "podcast_name is required")
		return
	}

	detail, err := h.svc.PodcastByName(r.Context(), podcastName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeErrorWithCode(w, http.StatusNotFound, "podcast not found", "PODCAST_NOT_FOUND")
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.prefetchPreviews(detail.Episodes)
	writeJSON(w, http.StatusOK, detail)
}

// prefetchPreviews warms the audio cache for episodes the user is likely to
// play next.
func (h *Handler) prefetchPreviews(episodes []domain.Episode) {
	if h.prefetch == nil {
		return
	}
	for _, episode := range episodes {
		if episode.AudioPreviewURL == "" {
			continue
		}
		h.prefetch.Submit(worker.Job{
			EpisodeID:  episode.ID,
			PreviewURL: episode.AudioPreviewURL,
		})
	}
}
