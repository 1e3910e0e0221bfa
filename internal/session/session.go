// Package session keeps per-visitor key/value state for the lifetime of the
// process, keyed by an opaque cookie. Nothing survives a restart.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	CookieName = "report_session"
	DefaultTTL = 12 * time.Hour
)

// Values is the key/value view of a session.
type Values interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Session is one visitor's values. Safe for concurrent use.
type Session struct {
	id       string
	mu       sync.RWMutex
	values   map[string]string
	lastSeen time.Time
}

func (s *Session) ID() string { return s.id }

func (s *Session) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Session) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Store holds every live session. Sessions idle for longer than the TTL are
// dropped.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	secure   bool
	now      func() time.Time
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithSecureCookie marks the cookie Secure, for deployments behind HTTPS.
func WithSecureCookie(secure bool) Option {
	return func(s *Store) { s.secure = secure }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup returns the session named by the request cookie, if it is still live.
func (s *Store) Lookup(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[c.Value]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, sess.id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

// Start returns the request's session, creating one and setting the cookie
// when there is none.
func (s *Store) Start(w http.ResponseWriter, r *http.Request) *Session {
	if sess, ok := s.Lookup(r); ok {
		return sess
	}

	s.mu.Lock()
	now := s.now()
	s.pruneLocked(now)
	sess := &Session{
		id:       uuid.NewString(),
		values:   make(map[string]string),
		lastSeen: now,
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// Len is the number of sessions held, expired ones included until pruned.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
