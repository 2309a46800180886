package player

import (
	"testing"

	"github.com/Agnik7/SuurAI/internal/core/domain"
)

// --- Fakes ---

type fakeNative struct {
	events chan Event

	loaded    []string
	plays     int
	pauses    int
	positions []float64
	volumes   []float64
	unloads   int

	playErr error
}

func newFakeNative() *fakeNative {
	return &fakeNative{events: make(chan Event)}
}

func (f *fakeNative) Load(sourceURL string) error { f.loaded = append(f.loaded, sourceURL); return nil }
func (f *fakeNative) Play() error                 { f.plays++; return f.playErr }
func (f *fakeNative) Pause() error                { f.pauses++; return nil }
func (f *fakeNative) SetPosition(s float64) error { f.positions = append(f.positions, s); return nil }
func (f *fakeNative) SetVolume(l float64) error   { f.volumes = append(f.volumes, l); return nil }
func (f *fakeNative) Unload() error               { f.unloads++; return nil }
func (f *fakeNative) Events() <-chan Event        { return f.events }

type fakeEmbed struct {
	commands []Command
}

func (f *fakeEmbed) Post(cmd Command) error {
	f.commands = append(f.commands, cmd)
	return nil
}

func nativeEpisode() domain.Episode {
	return domain.Episode{
		ID:              "ep-1",
		Title:           "The AI Election",
		PodcastName:     "Hard Fork",
		DurationMs:      120000,
		AudioPreviewURL: "https://audio.example/ep-1.mp3",
	}
}

func embeddedEpisode() domain.Episode {
	return domain.Episode{
		ID:               "ep-2",
		Title:            "Year in Review",
		PodcastName:      "Hard Fork",
		DurationMs:       120000,
		AudioPreviewURL:  "https://audio.example/ep-2.mp3",
		ExternalEmbedURL: "https://open.spotify.com/episode/xyz",
	}
}

// --- Tests ---

func TestStartSelectsMode(t *testing.T) {
	tests := []struct {
		name       string
		episode    domain.Episode
		wantMode   Mode
		wantSource string
	}{
		{
			name:       "embed url wins over preview audio",
			episode:    embeddedEpisode(),
			wantMode:   ModeEmbeddedPlayer,
			wantSource: "https://open.spotify.com/embed/episode/xyz",
		},
		{
			name:       "preview audio selects native mode",
			episode:    nativeEpisode(),
			wantMode:   ModeNativeAudio,
			wantSource: "https://audio.example/ep-1.mp3",
		},
		{
			name:       "no source at all degrades to the placeholder",
			episode:    domain.Episode{ID: "ep-3", Title: "Silent", DurationMs: 60000},
			wantMode:   ModeNativeAudio,
			wantSource: placeholderAudioURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewController(newFakeNative(), &fakeEmbed{})

			status := ctrl.Start(tt.episode)
			if status.State != StateLoaded {
				t.Fatalf("state: got %s, want %s", status.State, StateLoaded)
			}
			if status.Session == nil {
				t.Fatal("expected an active session")
			}
			if status.Session.Mode != tt.wantMode {
				t.Errorf("mode: got %s, want %s", status.Session.Mode, tt.wantMode)
			}
			if status.Session.SourceURL != tt.wantSource {
				t.Errorf("source: got %q, want %q", status.Session.SourceURL, tt.wantSource)
			}
			if status.Session.CurrentTimeSeconds != 0 {
				t.Errorf("current time: got %v, want 0", status.Session.CurrentTimeSeconds)
			}
			if status.Session.DurationSeconds != float64(tt.episode.DurationMs)/1000 {
				t.Errorf("duration: got %v", status.Session.DurationSeconds)
			}
		})
	}
}

func TestStartReplacesExistingSession(t *testing.T) {
	native := newFakeNative()
	ctrl := NewController(native, &fakeEmbed{})

	ctrl.Start(nativeEpisode())
	ctrl.Seek(60)
	ctrl.TogglePlayPause()

	status := ctrl.Start(embeddedEpisode())
	if status.Session.EpisodeID != "ep-2" {
		t.Errorf("session should reference the new episode, got %q", status.Session.EpisodeID)
	}
	if status.Session.CurrentTimeSeconds != 0 {
		t.Errorf("current time must reset, got %v", status.Session.CurrentTimeSeconds)
	}
	if status.Session.IsPlaying {
		t.Error("replacement session must start paused")
	}
	if native.unloads != 1 {
		t.Errorf("old native session should be unloaded once, got %d", native.unloads)
	}
}

func TestSeekClamping(t *testing.T) {
	tests := []struct {
		name   string
		target float64
		want   float64
	}{
		{"negative target clamps to zero", -5, 0},
		{"past the end clamps to duration", 500, 120},
		{"in-range target unchanged", 45, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewController(newFakeNative(), &fakeEmbed{})
			ctrl.Start(nativeEpisode()) // 120s

			status := ctrl.Seek(tt.target)
			if got := status.Session.CurrentTimeSeconds; got != tt.want {
				t.Errorf("current time: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSkipClampsAtDuration(t *testing.T) {
	ctrl := NewController(newFakeNative(), &fakeEmbed{})
	ctrl.Start(nativeEpisode()) // 120s
	ctrl.Seek(110)

	status := ctrl.Skip(15)
	if got := status.Session.CurrentTimeSeconds; got != 120 {
		t.Errorf("current time: got %v, want 120", got)
	}

	status = ctrl.Skip(-15)
	if got := status.Session.CurrentTimeSeconds; got != 105 {
		t.Errorf("current time after skipping back: got %v, want 105", got)
	}
}

func TestToggleNativeModeIsAuthoritative(t *testing.T) {
	native := newFakeNative()
	ctrl := NewController(native, &fakeEmbed{})
	ctrl.Start(nativeEpisode())

	status := ctrl.TogglePlayPause()
	if status.State != StatePlaying || !status.Session.IsPlaying {
		t.Fatalf("expected playing state, got %s", status.State)
	}
	if native.plays != 1 {
		t.Errorf("native Play calls: got %d, want 1", native.plays)
	}

	status = ctrl.TogglePlayPause()
	if status.State != StatePaused || status.Session.IsPlaying {
		t.Fatalf("expected paused state, got %s", status.State)
	}
	if native.pauses != 1 {
		t.Errorf("native Pause calls: got %d, want 1", native.pauses)
	}
}

func TestToggleNativeFailureKeepsState(t *testing.T) {
	native := newFakeNative()
	native.playErr = errTest
	ctrl := NewController(native, &fakeEmbed{})
	ctrl.Start(nativeEpisode())

	status := ctrl.TogglePlayPause()
	if status.State != StateLoaded || status.Session.IsPlaying {
		t.Fatalf("state must not flip when the resource refuses: %s", status.State)
	}
}

func TestToggleEmbeddedModeIsOptimistic(t *testing.T) {
	embed := &fakeEmbed{}
	ctrl := NewController(newFakeNative(), embed)
	ctrl.Start(embeddedEpisode())

	status := ctrl.TogglePlayPause()
	if status.State != StatePlaying {
		t.Fatalf("expected optimistic playing state, got %s", status.State)
	}
	if !status.Session.PositionEstimated {
		t.Error("embedded sessions must flag their position as estimated")
	}

	ctrl.TogglePlayPause()
	if len(embed.commands) != 2 {
		t.Fatalf("embed commands: got %d, want 2", len(embed.commands))
	}
	if embed.commands[0].Command != "play" || embed.commands[1].Command != "pause" {
		t.Errorf("commands: %+v", embed.commands)
	}
}

func TestSeekEmbeddedModeSendsPosition(t *testing.T) {
	embed := &fakeEmbed{}
	ctrl := NewController(newFakeNative(), embed)
	ctrl.Start(embeddedEpisode())

	ctrl.Seek(42)
	if len(embed.commands) != 1 {
		t.Fatalf("embed commands: got %d, want 1", len(embed.commands))
	}
	cmd := embed.commands[0]
	if cmd.Command != "seek" || cmd.Position == nil || *cmd.Position != 42 {
		t.Errorf("seek command: %+v", cmd)
	}
}

func TestSetVolume(t *testing.T) {
	native := newFakeNative()
	ctrl := NewController(native, &fakeEmbed{})
	ctrl.Start(nativeEpisode())

	status := ctrl.SetVolume(1.7)
	if got := status.Session.Volume; got != 1 {
		t.Errorf("volume must clamp to 1, got %v", got)
	}
	status = ctrl.SetVolume(-0.3)
	if got := status.Session.Volume; got != 0 {
		t.Errorf("volume must clamp to 0, got %v", got)
	}
	if len(native.volumes) != 2 {
		t.Errorf("native SetVolume calls: got %d, want 2", len(native.volumes))
	}
}

func TestSetVolumeEmbeddedModeIsNoOp(t *testing.T) {
	embed := &fakeEmbed{}
	ctrl := NewController(newFakeNative(), embed)
	ctrl.Start(embeddedEpisode())

	status := ctrl.SetVolume(0.2)
	if got := status.Session.Volume; got != 1 {
		t.Errorf("embedded volume must stay at default, got %v", got)
	}
	if len(embed.commands) != 0 {
		t.Errorf("no embed command exists for volume, got %+v", embed.commands)
	}
}

func TestCloseDestroysSession(t *testing.T) {
	native := newFakeNative()
	ctrl := NewController(native, &fakeEmbed{})
	ctrl.Start(nativeEpisode())

	status := ctrl.Close()
	if status.State != StateStopped || status.Session != nil {
		t.Fatalf("expected stopped with no session, got %+v", status)
	}
	if native.unloads != 1 {
		t.Errorf("native Unload calls: got %d, want 1", native.unloads)
	}

	// Operations after close are harmless no-ops.
	if status := ctrl.TogglePlayPause(); status.State != StateStopped {
		t.Errorf("toggle after close: got %s", status.State)
	}
	if status := ctrl.Seek(30); status.State != StateStopped {
		t.Errorf("seek after close: got %s", status.State)
	}
}

func TestNativeEventsMirrorIntoSession(t *testing.T) {
	native := newFakeNative()
	ctrl := NewController(native, &fakeEmbed{})
	ctrl.Start(nativeEpisode())
	ctrl.TogglePlayPause()

	// The event loop reads one event at a time, so a send only completes
	// after every earlier event has been applied. The extra trailing send
	// flushes the last interesting one.
	native.events <- Event{Kind: EventDuration, Seconds: 95}
	native.events <- Event{Kind: EventPosition, Seconds: 40}
	native.events <- Event{Kind: EventDuration, Seconds: 95}
	ctrl.mu.Lock()
	duration := ctrl.session.DurationSeconds
	position := ctrl.session.CurrentTimeSeconds
	ctrl.mu.Unlock()

	if duration != 95 {
		t.Errorf("duration from metadata event: got %v, want 95", duration)
	}
	if position != 40 {
		t.Errorf("position from tick event: got %v, want 40", position)
	}

	native.events <- Event{Kind: EventEnded}
	native.events <- Event{Kind: EventDuration, Seconds: 95}
	ctrl.mu.Lock()
	state := ctrl.state
	session := ctrl.session
	ctrl.mu.Unlock()

	if state != StatePaused || session.IsPlaying {
		t.Fatalf("end of media must pause: state=%s playing=%v", state, session.IsPlaying)
	}
	if session.CurrentTimeSeconds != session.DurationSeconds {
		t.Errorf("position at end: got %v, want %v", session.CurrentTimeSeconds, session.DurationSeconds)
	}
}

var errTest = errorString("backend refused")

type errorString string

func (e errorString) Error() string { return string(e) }
