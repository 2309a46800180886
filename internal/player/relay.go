package player

import "sync"

// Message is an embed command stamped with the only origin it may be
// delivered to.
type Message struct {
	TargetOrigin string `json:"targetOrigin"`
	Command
}

// Relay buffers embed commands for the frontend, which drains them and
// forwards each to the embed frame at its stamped origin. The buffer is
// bounded; when full the oldest command is dropped, matching the
// fire-and-forget nature of the protocol.
type Relay struct {
	mu       sync.Mutex
	queue    []Message
	capacity int
}

var _ EmbedBackend = (*Relay)(nil)

// NewRelay creates a relay holding at most capacity undelivered commands.
func NewRelay(capacity int) *Relay {
	if capacity < 1 {
		capacity = 1
	}
	return &Relay{capacity: capacity}
}

// Post enqueues a command addressed to the embed provider origin.
func (r *Relay) Post(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) >= r.capacity {
		r.queue = r.queue[1:]
	}
	r.queue = append(r.queue, Message{TargetOrigin: EmbedOrigin, Command: cmd})
	return nil
}

// Drain returns all pending commands in issue order and empties the buffer.
func (r *Relay) Drain() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := r.queue
	r.queue = nil
	return pending
}
