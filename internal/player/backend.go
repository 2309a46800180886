// Package player owns the single shared playback session. One controller
// presents the same transport surface over two incompatible backends: a
// directly addressable audio resource and an embedded third-party player
// that only accepts fire-and-forget messages.
package player

// Mode identifies which backend a session plays through. It is chosen once
// at session start and never changes for the life of the session.
type Mode string

const (
	ModeNativeAudio    Mode = "native"
	ModeEmbeddedPlayer Mode = "embedded"
)

// State is the controller's transport state.
type State string

const (
	StateStopped State = "stopped"
	StateLoaded  State = "loaded"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
)

// EventKind tags notifications flowing back from a native backend.
type EventKind int

const (
	// EventPosition is a periodic position update.
	EventPosition EventKind = iota
	// EventDuration reports the media duration once metadata is known.
	EventDuration
	// EventEnded signals natural end of media.
	EventEnded
)

// Event is a notification from a native backend. Native backends are
// authoritative for playback state; the controller mirrors their events.
type Event struct {
	Kind    EventKind
	Seconds float64
}

// NativeBackend is a directly addressable media resource. Calls take effect
// synchronously and failures are observable.
type NativeBackend interface {
	Load(sourceURL string) error
	Play() error
	Pause() error
	SetPosition(seconds float64) error
	SetVolume(level float64) error
	Unload() error
	// Events delivers position, duration, and end-of-media notifications.
	// The channel stays open for the backend's lifetime.
	Events() <-chan Event
}

// EmbedBackend delivers commands to an embedded third-party player. There is
// no acknowledgement channel: delivery and effect are both best-effort, so
// the controller's state may drift from the player's.
type EmbedBackend interface {
	Post(cmd Command) error
}
