package state

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/kikuu-commerce/storefront/pkg/tokens"
)

// refreshWindow is how close to expiry a restored access token may be
// before the session restore refreshes it proactively.
const refreshWindow = time.Minute

type authState struct {
	life          lifecycle
	user          domain.User
	token         domain.TokenPair
	authenticated bool
}

type AuthSnapshot struct {
	User          domain.User
	Token         domain.TokenPair
	Authenticated bool
	AsyncStatus
}

func (s *Store) AuthState() AuthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AuthSnapshot{
		User:          s.auth.user,
		Token:         s.auth.token,
		Authenticated: s.auth.authenticated,
		AsyncStatus:   s.auth.life.status(),
	}
}

// Register signs the user up. A fulfilled registration does not log in;
// the user logs in separately.
func (s *Store) Register(ctx context.Context, r domain.Registration) error {
	const op = "state.Store.Register"

	seq := s.begin(&s.auth.life)
	_, err := s.gateway.Register(ctx, r)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Login authenticates and persists the session under the two durable
// storage keys. A storage write failure does not fail the login; the
// session simply will not survive a restart.
func (s *Store) Login(ctx context.Context, email, password string) error {
	const op = "state.Store.Login"
	log := slog.With("op", op)

	seq := s.begin(&s.auth.life)
	sess, err := s.gateway.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.auth.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.auth.user = sess.User
	s.auth.token = sess.Token
	s.auth.authenticated = true

	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		log.Warn("failed to persist session", "err", err)
	}
	return nil
}

// RefreshToken renews the access token. A rejected refresh is fatal for
// the session: the user is logged out and durable storage is cleared.
func (s *Store) RefreshToken(ctx context.Context) error {
	const op = "state.Store.RefreshToken"
	log := slog.With("op", op)

	s.mu.Lock()
	refresh := s.auth.token.Refresh
	seq := s.auth.life.begin()
	s.mu.Unlock()

	access, err := s.gateway.RefreshToken(ctx, refresh)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.auth.life.settle(seq, err)
	if err != nil {
		// Only the latest refresh may terminate the session; a superseded
		// rejection returns its error without touching state.
		if settled {
			s.resetAuthLocked(ctx)
			log.Warn("refresh failed, session terminated", "err", err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.auth.token.Access = access
	sess := domain.Session{User: s.auth.user, Token: s.auth.token}
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		log.Warn("failed to persist refreshed session", "err", err)
	}
	return nil
}

// Logout resets auth state and clears both durable storage keys.
func (s *Store) Logout(ctx context.Context) error {
	const op = "state.Store.Logout"

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.resetAuthLocked(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) resetAuthLocked(ctx context.Context) error {
	s.auth.user = domain.User{}
	s.auth.token = domain.TokenPair{}
	s.auth.authenticated = false
	s.auth.life.err = ""
	return s.sessions.ClearSession(ctx)
}

// RestoreSession loads the stored session at startup. No stored session is
// not an error. A restored access token close to expiry is refreshed
// immediately; if that refresh fails the session is discarded.
func (s *Store) RestoreSession(ctx context.Context) error {
	const op = "state.Store.RestoreSession"
	log := slog.With("op", op)

	sess, err := s.sessions.LoadSession(ctx)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	s.auth.user = sess.User
	s.auth.token = sess.Token
	s.auth.authenticated = true
	s.mu.Unlock()

	if !tokens.ExpiresWithin(sess.Token.Access, refreshWindow) {
		log.Info("session restored", "user", sess.User.Username)
		return nil
	}

	if err := s.RefreshToken(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info("session restored with refreshed token", "user", sess.User.Username)
	return nil
}

func (s *Store) ClearAuthError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.life.err = ""
}
