package dashboard

import (
	"sync"
	"time"

	"expensetracker/internal/summary"
)

// Session is the server-side state of one login.
type Session struct {
	ID        string
	Username  string
	StartedAt time.Time
	// alertArmed is true until the budget alert fires, and again once
	// monthly spending drops below the budget.
	alertArmed bool
}

// Registry holds sessions by id. Safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ended    map[string]time.Time
	now      func() time.Time
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ended:    make(map[string]time.Time),
		now:      time.Now,
	}
}

// Start records a new session. The alert starts armed.
func (r *Registry) Start(id, username string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.startLocked(id, username)
}

func (r *Registry) startLocked(id, username string) *Session {
	s := &Session{ID: id, Username: username, StartedAt: r.now(), alertArmed: true}
	r.sessions[id] = s
	return s
}

// EvaluateAlert runs the budget alert for session id against sum and
// reports whether the alert fires. Unknown sessions start armed.
func (r *Registry) EvaluateAlert(id, username string, sum summary.Summary) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.Username != username {
		s = r.startLocked(id, username)
	}
	fire, armed := summary.NextAlert(s.alertArmed, sum)
	s.alertArmed = armed
	return fire
}

// End drops the session and rejects its id until expiresAt, when the
// session's token would have expired anyway.
func (r *Registry) End(id string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	r.ended[id] = expiresAt
	r.pruneLocked()
}

// Ended reports whether the session was ended by logout.
func (r *Registry) Ended(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	until, ok := r.ended[id]
	if !ok {
		return false
	}
	if !r.now().Before(until) {
		delete(r.ended, id)
		return false
	}
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) pruneLocked() {
	now := r.now()
	for id, until := range r.ended {
		if !now.Before(until) {
			delete(r.ended, id)
		}
	}
}
