package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/bakeryhub/storefront/internal/core/domain"
	"github.com/bakeryhub/storefront/internal/core/ports"
)

// SessionStatus is the auth lifecycle state.
type SessionStatus string

const (
	SessionLoading         SessionStatus = "loading"
	SessionAuthenticated   SessionStatus = "authenticated"
	SessionUnauthenticated SessionStatus = "unauthenticated"
)

// SessionChange describes one auth state transition delivered to subscribers.
// Subscribers compare Prev and Cur to detect edges; the store fires exactly
// once per transition.
type SessionChange struct {
	Prev *domain.AuthUser
	Cur  *domain.AuthUser
	// ByLogout is true when the transition was initiated by Logout, which
	// performs its own navigation. The redirect watcher skips those so the
	// user is not redirected twice.
	ByLogout bool
}

// SessionSubscriber receives auth state transitions.
type SessionSubscriber func(SessionChange)

// SessionStore owns the authenticated user for the whole client process.
// All mutations go through Login/Logout/Expire; the persisted record mirrors
// the in-memory state at all times.
type SessionStore struct {
	storage  ports.KeyValueStore
	accounts ports.AccountsAPI
	nav      ports.Navigator
	log      zerolog.Logger

	mu     sync.Mutex
	status SessionStatus
	user   *domain.AuthUser
	subs   []SessionSubscriber
}

func NewSessionStore(storage ports.KeyValueStore, accounts ports.AccountsAPI, nav ports.Navigator, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		storage:  storage,
		accounts: accounts,
		nav:      nav,
		log:      log,
		status:   SessionLoading,
	}
}

// Restore reads the persisted user record. A record that fails to parse is
// cleared and the session starts unauthenticated; restore never errors out to
// the caller.
func (s *SessionStore) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Load(ctx, ports.KeyAuthUser)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.log.Warn().Err(err).Msg("failed to read persisted session")
		}
		s.status = SessionUnauthenticated
		return
	}

	var user domain.AuthUser
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn().Err(err).Msg("persisted session unreadable, clearing")
		_ = s.storage.Clear(ctx, ports.KeyAuthUser)
		s.status = SessionUnauthenticated
		return
	}

	s.user = &user
	s.status = SessionAuthenticated
}

// Status returns the current lifecycle state.
func (s *SessionStore) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// User returns the authenticated user, or nil.
func (s *SessionStore) User() *domain.AuthUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

// Login installs the user obtained from a prior API call and persists it
// synchronously. No round trip happens here.
func (s *SessionStore) Login(ctx context.Context, user *domain.AuthUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	prev := s.user
	clone := *user
	s.user = &clone
	s.status = SessionAuthenticated
	if err := s.storage.Save(ctx, ports.KeyAuthUser, raw); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
	}
	subs := append([]SessionSubscriber(nil), s.subs...)
	s.mu.Unlock()

	s.notify(subs, SessionChange{Prev: prev, Cur: &clone})
	return nil
}

// Logout clears the client session optimistically, then best-effort notifies
// the backend (a failure is logged, never surfaced), then navigates to "/".
// From the UI's perspective logout always succeeds.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	prev := s.user
	s.user = nil
	s.status = SessionUnauthenticated
	_ = s.storage.Clear(ctx, ports.KeyAuthUser)
	subs := append([]SessionSubscriber(nil), s.subs...)
	s.mu.Unlock()

	if prev != nil {
		s.notify(subs, SessionChange{Prev: prev, Cur: nil, ByLogout: true})
	}

	if err := s.accounts.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("backend logout failed")
	}
	if s.nav != nil {
		s.nav.NavigateTo("/")
	}
}

// Expire handles a server-driven session end (401 detected elsewhere): the
// session is cleared like a logout but without the logout-owned navigation,
// so the redirect watcher takes over.
func (s *SessionStore) Expire(ctx context.Context) {
	s.mu.Lock()
	prev := s.user
	s.user = nil
	s.status = SessionUnauthenticated
	_ = s.storage.Clear(ctx, ports.KeyAuthUser)
	subs := append([]SessionSubscriber(nil), s.subs...)
	s.mu.Unlock()

	if prev != nil {
		s.notify(subs, SessionChange{Prev: prev, Cur: nil})
	}
}

// Subscribe registers a transition watcher. Watchers fire once per state
// change, after the store and persisted record are already updated.
func (s *SessionStore) Subscribe(sub SessionSubscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, sub)
}

func (s *SessionStore) notify(subs []SessionSubscriber, change SessionChange) {
	for _, sub := range subs {
		sub(change)
	}
}

// Token returns the current access token, or "". Wire this into the backend
// client's token source.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.AccessToken
}

// TokenExpired reports whether the session's access token carries an exp
// claim in the past. The token is parsed without verification; the client
// holds no signing key and only reads the expiry.
func (s *SessionStore) TokenExpired(now time.Time) bool {
	tok := s.Token()
	if tok == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// WatchRedirect installs the global redirect-on-logout watcher: any
// authenticated→unauthenticated edge not already handled by Logout itself
// navigates to "/". Covers server-driven expiry.
func (s *SessionStore) WatchRedirect(nav ports.Navigator) {
	s.Subscribe(func(ch SessionChange) {
		if ch.Prev != nil && ch.Cur == nil && !ch.ByLogout {
			nav.NavigateTo("/")
		}
	})
}
