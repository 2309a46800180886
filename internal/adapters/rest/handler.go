// Package rest exposes the HTTP interface consumed by the web frontend.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/Agnik7/SuurAI/internal/core/services"
	"github.com/Agnik7/SuurAI/internal/player"
	"github.com/Agnik7/SuurAI/internal/session"
	"github.com/Agnik7/SuurAI/internal/worker"
)

// Handler manages the HTTP interface for the application.
type Handler struct {
	svc      *services.Discovery
	ctrl     *player.Controller
	relay    *player.Relay
	sessions *session.Manager
	prefetch *worker.Pool
	router   *http.ServeMux
}

// NewHandler initializes the HTTP adapter and sets up routes. relay and
// prefetch may be nil; the corresponding endpoints then degrade gracefully.
func NewHandler(svc *services.Discovery, ctrl *player.Controller, relay *player.Relay, sessions *session.Manager, prefetch *worker.Pool) *Handler {
	h := &Handler{
		svc:      svc,
		ctrl:     ctrl,
		relay:    relay,
		sessions: sessions,
		prefetch: prefetch,
		router:   http.NewServeMux(),
	}
	h.routes()
	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)

	// Discovery
	h.router.HandleFunc("GET /podcasts", h.Recommendations)
	h.router.HandleFunc("GET /podcasts/episodes", h.PodcastEpisodes)

	// Playback
	h.router.HandleFunc("GET /player", h.PlayerStatus)
	h.router.HandleFunc("POST /player/session", h.StartPlayback)
	h.router.HandleFunc("POST /player/toggle", h.TogglePlayback)
	h.router.HandleFunc("POST /player/seek", h.SeekPlayback)
	h.router.HandleFunc("POST /player/skip", h.SkipPlayback)
	h.router.HandleFunc("POST /player/volume", h.SetPlaybackVolume)
	h.router.HandleFunc("DELETE /player", h.ClosePlayback)
	h.router.HandleFunc("GET /player/commands", h.PlayerCommands)

	// Identity
	h.router.HandleFunc("POST /auth/login", h.Login)
	h.router.HandleFunc("POST /auth/signup", h.Signup)
	h.router.HandleFunc("POST /auth/logout", h.Logout)
	h.router.HandleFunc("GET /auth/me", h.CurrentUser)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
