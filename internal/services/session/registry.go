// File: internal/services/session/registry.go
package session

import (
	"sync"
	"time"

	"github.com/pharmago/pharmago/internal/domain"
	"github.com/pharmago/pharmago/internal/services"
)

const defaultTTL = 60 * time.Minute

// Session holds the in-memory transcript of one chat session. All access
// goes through the registry lock.
type Session struct {
	id         string
	messages   []domain.TranscriptMessage
	lastActive time.Time
}

// Registry keeps live chat sessions and evicts the ones idle past the TTL.
// Eviction only drops the in-memory transcript; the durable snapshot and
// the history log are untouched.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   services.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

func NewRegistry(ttl time.Duration, logger services.Logger) *Registry {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start launches the background sweep. Call Stop during shutdown.
func (r *Registry) Start() {
	go r.sweepLoop()
}

func (r *Registry) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// Append records one turn on the session, creating it if needed.
func (r *Registry) Append(sessionID, role, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		s = &Session{id: sessionID}
		r.sessions[sessionID] = s
	}
	s.messages = append(s.messages, domain.TranscriptMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	s.lastActive = time.Now()
}

// History returns a copy of the session transcript, oldest first. A missing
// session yields an empty slice.
func (r *Registry) History(sessionID string) []domain.TranscriptMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return []domain.TranscriptMessage{}
	}
	s.lastActive = time.Now()
	out := make([]domain.TranscriptMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Clear removes the session transcript. Clearing an unknown session is a
// no-op.
func (r *Registry) Clear(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) sweepLoop() {
	interval := r.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if evicted := r.evictIdle(time.Now()); evicted > 0 {
				r.logger.Info("Evicted idle chat sessions", "count", evicted)
			}
		case <-r.stop:
			return
		}
	}
}

func (r *Registry) evictIdle(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastActive) > r.ttl {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}
