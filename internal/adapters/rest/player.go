package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Agnik7/SuurAI/internal/core/domain"
	"github.com/Agnik7/SuurAI/internal/player"
)

type startPlaybackRequest struct {
	EpisodeID        string `json:"episodeId"`
	Title            string `json:"title"`
	PodcastName      string `json:"podcastName"`
	DurationMs       int    `json:"durationMs"`
	ReleaseDate      string `json:"releaseDate,omitempty"`
	AudioPreviewURL  string `json:"audioPreviewUrl,omitempty"`
	ExternalEmbedURL string `json:"externalEmbedUrl,omitempty"`
}

type seekRequest struct {
	Seconds float64 `json:"seconds"`
}

type skipRequest struct {
	DeltaSeconds float64 `json:"deltaSeconds"`
}

type volumeRequest struct {
	Level float64 `json:"level"`
}

// PlayerStatus handles GET /player.
func (h *Handler) PlayerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Snapshot())
}

// StartPlayback handles POST /player/session. Any active session is
// replaced unconditionally.
func (h *Handler) StartPlayback(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req startPlaybackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EpisodeID == "" {
		writeError(w, http.StatusBadRequest, "episodeId is required")
		return
	}

	episode := domain.Episode{
		ID:               req.EpisodeID,
		Title:            req.Title,
		PodcastName:      req.PodcastName,
		DurationMs:       req.DurationMs,
		AudioPreviewURL:  req.AudioPreviewURL,
		ExternalEmbedURL: req.ExternalEmbedURL,
	}
	if req.ReleaseDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.ReleaseDate); err == nil {
			episode.ReleaseDate = parsed
		}
	}

	writeJSON(w, http.StatusCreated, h.ctrl.Start(episode))
}

// TogglePlayback handles POST /player/toggle.
func (h *Handler) TogglePlayback(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.TogglePlayPause())
}

// SeekPlayback handles POST /player/seek.
func (h *Handler) SeekPlayback(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req seekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.ctrl.Seek(req.Seconds))
}

// SkipPlayback handles POST /player/skip.
func (h *Handler) SkipPlayback(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req skipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.ctrl.Skip(req.DeltaSeconds))
}

// SetPlaybackVolume handles POST /player/volume.
func (h *Handler) SetPlaybackVolume(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req volumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.ctrl.SetVolume(req.Level))
}

// ClosePlayback handles DELETE /player.
func (h *Handler) ClosePlayback(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.Close())
}

// PlayerCommands handles GET /player/commands: the frontend drains pending
// embed commands and forwards each to the iframe at its stamped origin.
func (h *Handler) PlayerCommands(w http.ResponseWriter, r *http.Request) {
	messages := []player.Message{}
	if h.relay != nil {
		if pending := h.relay.Drain(); pending != nil {
			messages = pending
		}
	}
	writeJSON(w, http.StatusOK, map[string][]player.Message{"commands": messages})
}
