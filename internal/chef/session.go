package chef

import (
	"sync"
	"time"

	"github.com/sahas-01/ChefGPT/internal/recipe"
)

// Phase tracks the ask-the-chef cycle: Idle → Thinking → {Ready, Failed}.
// Failed is recoverable; a new generation request (the "Regenerate" action)
// moves any phase back to Thinking. There are no terminal phases.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseThinking
	PhaseReady
	PhaseFailed
)

// String returns a human-readable phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseThinking:
		return "thinking"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session holds the state of the current generation cycle. Generated recipes
// are ephemeral: a regenerate replaces the previous batch outright, with no
// stale content preserved while a new one is in flight.
type Session struct {
	mu         sync.RWMutex
	phase      Phase
	suggestion *recipe.Suggestion
	lastError  string
	updatedAt  time.Time
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{phase: PhaseIdle}
}

// Begin marks a generation in flight, discarding the previous batch.
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseThinking
	s.suggestion = nil
	s.lastError = ""
	s.updatedAt = time.Now()
}

// Complete records a successful generation.
func (s *Session) Complete(sg *recipe.Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseReady
	s.suggestion = sg
	s.lastError = ""
	s.updatedAt = time.Now()
}

// Fail records a failed generation. The session stays usable; the next Begin
// retries from scratch.
func (s *Session) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseFailed
	s.suggestion = nil
	s.lastError = msg
	s.updatedAt = time.Now()
}

// Snapshot returns the current phase, suggestion, and last error message.
func (s *Session) Snapshot() (Phase, *recipe.Suggestion, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase, s.suggestion, s.lastError
}
