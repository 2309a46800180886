package player

import "strings"

// EmbedOrigin is the only origin embed commands may be addressed to. The
// upstream protocol used a wildcard recipient; pinning the provider origin
// keeps commands from leaking to arbitrary documents.
const EmbedOrigin = "https://open.spotify.com"

const (
	sharePathSegment = "open.spotify.com/episode/"
	embedPathSegment = "open.spotify.com/embed/episode/"
)

// Command is the untyped message shape the embedded player accepts.
type Command struct {
	Command  string   `json:"command"` // "play", "pause", or "seek"
	Position *float64 `json:"position,omitempty"`
}

func playCommand() Command  { return Command{Command: "play"} }
func pauseCommand() Command { return Command{Command: "pause"} }

func seekCommand(seconds float64) Command {
	return Command{Command: "seek", Position: &seconds}
}

// EmbedURL rewrites a canonical share link into its embeddable form:
// .../episode/XYZ becomes .../embed/episode/XYZ. URLs that do not match the
// share pattern are returned unchanged.
func EmbedURL(shareURL string) string {
	if strings.Contains(shareURL, sharePathSegment) {
		return strings.Replace(shareURL, sharePathSegment, embedPathSegment, 1)
	}
	return shareURL
}
