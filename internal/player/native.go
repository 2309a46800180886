package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// FetchFunc resolves a source URL to a local audio file, typically through
// the prefetch cache.
type FetchFunc func(ctx context.Context, sourceURL string) (string, error)

const (
	tickInterval = time.Second
	probeTimeout = 30 * time.Second
	// 16-bit stereo output: 4 bytes per sample frame.
	bytesPerFrame = 4
)

// PreviewBackend is the native audio resource for preview playback. It
// resolves the source through fetch, probes the MP3 stream for its real
// duration, and drives the playback position with a wall-clock ticker.
type PreviewBackend struct {
	fetch  FetchFunc
	events chan Event

	mu       sync.Mutex
	loaded   bool
	playing  bool
	position float64
	duration float64
	volume   float64
	ticking  chan struct{}
	// generation guards against stale async probe results after a reload.
	generation int
}

var _ NativeBackend = (*PreviewBackend)(nil)

// NewPreviewBackend constructs the backend. fetch may be nil, in which case
// duration probing is skipped and only the ticker drives position.
func NewPreviewBackend(fetch FetchFunc) *PreviewBackend {
	return &PreviewBackend{
		fetch:  fetch,
		events: make(chan Event, 16),
		volume: 1,
	}
}

// Events implements NativeBackend.
func (b *PreviewBackend) Events() <-chan Event { return b.events }

// Load points the backend at a new source. The duration probe runs in the
// background and reports through an EventDuration once metadata is known.
func (b *PreviewBackend) Load(sourceURL string) error {
	if sourceURL == "" {
		return errors.New("preview backend: empty source url")
	}

	b.mu.Lock()
	b.stopTickingLocked()
	b.loaded = true
	b.playing = false
	b.position = 0
	b.duration = 0
	b.generation++
	generation := b.generation
	b.mu.Unlock()

	if b.fetch == nil {
		return nil
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()

		seconds, err := b.probeDuration(ctx, sourceURL)
		if err != nil {
			log.Printf("WARN preview backend: duration probe for %s failed: %v", sourceURL, err)
			return
		}

		b.mu.Lock()
		stale := generation != b.generation
		if !stale {
			b.duration = seconds
		}
		b.mu.Unlock()
		if !stale {
			b.emit(Event{Kind: EventDuration, Seconds: seconds})
		}
	}()

	return nil
}

// Play starts the position clock.
func (b *PreviewBackend) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.loaded {
		return errors.New("preview backend: nothing loaded")
	}
	if b.playing {
		return nil
	}
	b.playing = true

	stop := make(chan struct{})
	b.ticking = stop
	go b.tick(stop)
	return nil
}

// Pause stops the position clock, keeping the current position.
func (b *PreviewBackend) Pause() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.loaded {
		return errors.New("preview backend: nothing loaded")
	}
	b.stopTickingLocked()
	return nil
}

// SetPosition jumps the clock to the given position.
func (b *PreviewBackend) SetPosition(seconds float64) error {
	b.mu.Lock()
	if !b.loaded {
		b.mu.Unlock()
		return errors.New("preview backend: nothing loaded")
	}
	b.position = seconds
	b.mu.Unlock()

	b.emit(Event{Kind: EventPosition, Seconds: seconds})
	return nil
}

// SetVolume records the output level. Preview playback is headless, so the
// level only matters to whoever renders the audio downstream.
func (b *PreviewBackend) SetVolume(level float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.volume = level
	return nil
}

// Unload releases the current source.
func (b *PreviewBackend) Unload() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopTickingLocked()
	b.loaded = false
	b.position = 0
	b.duration = 0
	b.generation++
	return nil
}

// Shutdown closes the event stream. The backend must not be used afterwards.
func (b *PreviewBackend) Shutdown() {
	b.mu.Lock()
	b.stopTickingLocked()
	b.mu.Unlock()
	close(b.events)
}

func (b *PreviewBackend) tick(stop chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			b.mu.Lock()
			if !b.playing {
				b.mu.Unlock()
				return
			}
			b.position += tickInterval.Seconds()
			position := b.position
			ended := b.duration > 0 && b.position >= b.duration
			if ended {
				b.position = b.duration
				position = b.duration
				b.stopTickingLocked()
			}
			b.mu.Unlock()

			b.emit(Event{Kind: EventPosition, Seconds: position})
			if ended {
				b.emit(Event{Kind: EventEnded, Seconds: position})
				return
			}
		}
	}
}

func (b *PreviewBackend) stopTickingLocked() {
	b.playing = false
	if b.ticking != nil {
		close(b.ticking)
		b.ticking = nil
	}
}

// probeDuration decodes the fetched MP3 stream headers to compute the real
// media duration.
func (b *PreviewBackend) probeDuration(ctx context.Context, sourceURL string) (float64, error) {
	path, err := b.fetch(ctx, sourceURL)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, fmt.Errorf("decode failed: %w", err)
	}

	frames := decoder.Length() / bytesPerFrame
	if decoder.SampleRate() <= 0 {
		return 0, errors.New("invalid sample rate")
	}
	return float64(frames) / float64(decoder.SampleRate()), nil
}

func (b *PreviewBackend) emit(ev Event) {
	select {
	case b.events <- ev:
	default:
		// Listener is behind; ticks are disposable.
	}
}
