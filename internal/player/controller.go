package player

import (
	"log"
	"sync"

	"github.com/Agnik7/SuurAI/internal/core/domain"
)

// placeholderAudioURL keeps session creation from failing when an episode
// carries no preview audio at all.
const placeholderAudioURL = "https://example.com/placeholder-audio.mp3"

// Session describes the single active playback target.
type Session struct {
	EpisodeID          string  `json:"episodeId"`
	Title              string  `json:"title"`
	PodcastName        string  `json:"podcastName"`
	Mode               Mode    `json:"mode"`
	SourceURL          string  `json:"sourceUrl"`
	CurrentTimeSeconds float64 `json:"currentTimeSeconds"`
	DurationSeconds    float64 `json:"durationSeconds"`
	IsPlaying          bool    `json:"isPlaying"`
	Volume             float64 `json:"volume"`
	// PositionEstimated is set in embedded mode, where no position feed
	// exists and CurrentTimeSeconds only tracks issued commands.
	PositionEstimated bool `json:"positionEstimated"`
}

// Status is a point-in-time view of the controller.
type Status struct {
	State   State    `json:"state"`
	Session *Session `json:"session,omitempty"`
}

// Controller multiplexes the transport surface over the two backends. All
// mutation is serialized; commands issued by the caller are handled to
// completion in order.
type Controller struct {
	mu      sync.Mutex
	state   State
	session Session
	native  NativeBackend
	embed   EmbedBackend
}

// NewController wires the controller to its backends. Either backend may be
// nil, in which case the corresponding mode degrades to state-only updates.
// Native backend events are consumed until the backend closes its channel.
func NewController(native NativeBackend, embed EmbedBackend) *Controller {
	c := &Controller{
		state:  StateStopped,
		native: native,
		embed:  embed,
	}
	if native != nil {
		go func() {
			for ev := range native.Events() {
				c.handleEvent(ev)
			}
		}()
	}
	return c
}

// Start replaces any existing session unconditionally and loads the episode.
// Mode selection happens here, once: an embeddable URL wins over preview
// audio; a missing preview degrades to the placeholder source.
func (c *Controller) Start(episode domain.Episode) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	mode := ModeNativeAudio
	source := episode.AudioPreviewURL
	if episode.ExternalEmbedURL != "" {
		mode = ModeEmbeddedPlayer
		source = EmbedURL(episode.ExternalEmbedURL)
	} else if source == "" {
		source = placeholderAudioURL
	}

	c.session = Session{
		EpisodeID:          episode.ID,
		Title:              episode.Title,
		PodcastName:        episode.PodcastName,
		Mode:               mode,
		SourceURL:          source,
		CurrentTimeSeconds: 0,
		DurationSeconds:    float64(episode.DurationMs) / 1000,
		Volume:             1,
		PositionEstimated:  mode == ModeEmbeddedPlayer,
	}
	c.state = StateLoaded

	if mode == ModeNativeAudio && c.native != nil {
		if err := c.native.Load(source); err != nil {
			log.Printf("WARN player: failed to load %s: %v", source, err)
		}
	}

	return c.statusLocked()
}

// TogglePlayPause flips between playing and paused. Native backends confirm
// synchronously and stay authoritative; embedded mode flips optimistically
// and sends a command that may or may not take effect.
func (c *Controller) TogglePlayPause() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateStopped {
		return c.statusLocked()
	}

	wantPlaying := !c.session.IsPlaying
	switch c.session.Mode {
	case ModeNativeAudio:
		if c.native != nil {
			var err error
			if wantPlaying {
				err = c.native.Play()
			} else {
				err = c.native.Pause()
			}
			if err != nil {
				log.Printf("WARN player: toggle failed: %v", err)
				return c.statusLocked()
			}
		}
	case ModeEmbeddedPlayer:
		cmd := pauseCommand()
		if wantPlaying {
			cmd = playCommand()
		}
		c.postEmbed(cmd)
	}

	c.session.IsPlaying = wantPlaying
	if wantPlaying {
		c.state = StatePlaying
	} else {
		c.state = StatePaused
	}
	return c.statusLocked()
}

// Seek moves playback to the target position, clamped into the media bounds.
func (c *Controller) Seek(targetSeconds float64) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seekLocked(targetSeconds)
}

// Skip moves playback relative to the current position, with the same
// clamping as Seek.
func (c *Controller) Skip(deltaSeconds float64) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seekLocked(c.session.CurrentTimeSeconds + deltaSeconds)
}

func (c *Controller) seekLocked(targetSeconds float64) Status {
	if c.state == StateStopped {
		return c.statusLocked()
	}

	target := clamp(targetSeconds, 0, c.session.DurationSeconds)
	switch c.session.Mode {
	case ModeNativeAudio:
		if c.native != nil {
			if err := c.native.SetPosition(target); err != nil {
				log.Printf("WARN player: seek failed: %v", err)
				return c.statusLocked()
			}
		}
	case ModeEmbeddedPlayer:
		c.postEmbed(seekCommand(target))
	}

	c.session.CurrentTimeSeconds = target
	return c.statusLocked()
}

// SetVolume applies a clamped volume level. The embedded player has no
// documented volume command, so embedded mode is a no-op.
func (c *Controller) SetVolume(level float64) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateStopped || c.session.Mode == ModeEmbeddedPlayer {
		return c.statusLocked()
	}

	level = clamp(level, 0, 1)
	if c.native != nil {
		if err := c.native.SetVolume(level); err != nil {
			log.Printf("WARN player: set volume failed: %v", err)
			return c.statusLocked()
		}
	}
	c.session.Volume = level
	return c.statusLocked()
}

// Close destroys the session and returns to Stopped.
func (c *Controller) Close() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	return c.statusLocked()
}

// Snapshot reports the current state without mutating it.
func (c *Controller) Snapshot() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

func (c *Controller) stopLocked() {
	if c.state == StateStopped {
		return
	}
	if c.session.Mode == ModeNativeAudio && c.native != nil {
		if err := c.native.Unload(); err != nil {
			log.Printf("WARN player: unload failed: %v", err)
		}
	}
	c.session = Session{}
	c.state = StateStopped
}

// handleEvent mirrors native backend notifications into the session. Events
// are ignored outside native mode: the embedded player has no feed.
func (c *Controller) handleEvent(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateStopped || c.session.Mode != ModeNativeAudio {
		return
	}

	switch ev.Kind {
	case EventDuration:
		c.session.DurationSeconds = ev.Seconds
	case EventPosition:
		c.session.CurrentTimeSeconds = ev.Seconds
	case EventEnded:
		c.session.CurrentTimeSeconds = c.session.DurationSeconds
		c.session.IsPlaying = false
		c.state = StatePaused
	}
}

func (c *Controller) postEmbed(cmd Command) {
	if c.embed == nil {
		return
	}
	if err := c.embed.Post(cmd); err != nil {
		// Fire-and-forget by protocol; nothing to do beyond noting it.
		log.Printf("WARN player: embed command %q not delivered: %v", cmd.Command, err)
	}
}

func (c *Controller) statusLocked() Status {
	if c.state == StateStopped {
		return Status{State: StateStopped}
	}
	session := c.session
	return Status{State: c.state, Session: &session}
}

func clamp(v float64, lo float64, hi float64) float64 {
	if v < lo {
		return lo
	}
	if hi > lo && v > hi {
		return hi
	}
	return v
}
