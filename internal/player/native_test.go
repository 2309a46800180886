package player

import (
	"context"
	"errors"
	"testing"
)

func TestPreviewBackendLifecycle(t *testing.T) {
	b := NewPreviewBackend(nil)

	if err := b.Play(); err == nil {
		t.Fatal("Play before Load must fail")
	}
	if err := b.Pause(); err == nil {
		t.Fatal("Pause before Load must fail")
	}
	if err := b.SetPosition(10); err == nil {
		t.Fatal("SetPosition before Load must fail")
	}

	if err := b.Load("https://audio.example/ep.mp3"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := b.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := b.Play(); err != nil {
		t.Fatalf("Play while playing must be a no-op, got %v", err)
	}
	if err := b.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := b.Unload(); err != nil {
		t.Fatalf("Unload: %v", err)
	}
	if err := b.Play(); err == nil {
		t.Fatal("Play after Unload must fail")
	}
}

func TestPreviewBackendRejectsEmptySource(t *testing.T) {
	b := NewPreviewBackend(nil)
	if err := b.Load(""); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestPreviewBackendSetPositionEmitsEvent(t *testing.T) {
	b := NewPreviewBackend(nil)
	if err := b.Load("https://audio.example/ep.mp3"); err != nil {
		t.Fatal(err)
	}

	if err := b.SetPosition(42); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}

	ev := <-b.Events()
	if ev.Kind != EventPosition || ev.Seconds != 42 {
		t.Errorf("event: %+v", ev)
	}
}

func TestPreviewBackendProbeFailureIsNonFatal(t *testing.T) {
	fetch := func(ctx context.Context, sourceURL string) (string, error) {
		return "", errors.New("cache miss")
	}
	b := NewPreviewBackend(fetch)

	if err := b.Load("https://audio.example/ep.mp3"); err != nil {
		t.Fatalf("a failing probe must not fail Load: %v", err)
	}
	if err := b.Play(); err != nil {
		t.Fatalf("playback runs without a known duration: %v", err)
	}
	if err := b.Pause(); err != nil {
		t.Fatal(err)
	}
}

func TestPreviewBackendShutdownClosesEvents(t *testing.T) {
	b := NewPreviewBackend(nil)
	b.Shutdown()

	if _, ok := <-b.Events(); ok {
		t.Fatal("events channel should be closed after Shutdown")
	}
}
