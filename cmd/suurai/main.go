package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Agnik7/SuurAI/internal/adapters/qloo"
	"github.com/Agnik7/SuurAI/internal/adapters/rest"
	"github.com/Agnik7/SuurAI/internal/adapters/spotify"
	"github.com/Agnik7/SuurAI/internal/adapters/sqlite"
	"github.com/Agnik7/SuurAI/internal/config"
	"github.com/Agnik7/SuurAI/internal/core/services"
	"github.com/Agnik7/SuurAI/internal/logging"
	"github.com/Agnik7/SuurAI/internal/player"
	"github.com/Agnik7/SuurAI/internal/session"
	"github.com/Agnik7/SuurAI/internal/worker"
)

const relayCapacity = 64

func main() {
	// 1. Configuration
	configPath := os.Getenv("SUURAI_CONFIG")
	if configPath == "" {
		configPath = "suurai.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("FATAL: failed to load config: %v", err)
	}
	logging.Configure(cfg.LogPath)

	if cfg.QlooAPIKey == "" {
		log.Println("WARN: QLOO_API_KEY not set; recommendations will fall back to the sample set")
	}
	if cfg.SpotifyClientID == "" || cfg.SpotifyClientSecret == "" {
		log.Println("WARN: Spotify credentials not set; episode lookups will fail")
	}

	// 2. Initialize "Driven" Adapters
	store, err := sqlite.NewAdapter(cfg.StatePath)
	if err != nil {
		log.Fatalf("FATAL: failed to initialize state store: %v", err)
	}
	defer store.Close()

	sessions := session.NewManager(store)
	if err := sessions.Init(context.Background()); err != nil {
		log.Printf("WARN: could not restore persisted identity: %v", err)
	}

	qlooClient := qloo.NewClient(&http.Client{Timeout: cfg.RequestTimeout()}, cfg.QlooBaseURL, cfg.QlooAPIKey)
	spotifyClient := spotify.NewAuthenticatedClient(context.Background(), cfg.SpotifyClientID, cfg.SpotifyClientSecret)

	// 3. Core Logic
	svc := services.NewDiscovery(qlooClient, spotifyClient)

	// 4. Playback plumbing: prefetch cache feeds the native backend; the
	// relay carries embed commands back to the frontend.
	fetcher := worker.NewCacheFetcher(nil, cfg.CacheDir)
	pool := worker.NewPool(fetcher, cfg.PrefetchQueueSize)
	pool.Start(cfg.PrefetchWorkers)
	defer pool.Stop()

	native := player.NewPreviewBackend(fetcher.Fetch)
	defer native.Shutdown()
	relay := player.NewRelay(relayCapacity)
	ctrl := player.NewController(native, relay)

	// 5. HTTP interface
	handler := rest.NewHandler(svc, ctrl, relay, sessions, pool)

	log.Printf("SuurAI API is running on %s", cfg.ListenAddr)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
