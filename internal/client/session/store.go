// Package session owns the authenticated session: the bearer credential,
// the user profile snapshot, and the loading flag. It is constructed once at
// process start and handed by reference to every view that needs it.
package session

import (
	"context"
	"sync"

	"github.com/zenfit/zenfit/internal/client/api"
	"github.com/zenfit/zenfit/internal/client/models"
	"github.com/zenfit/zenfit/internal/client/repositories/credentials"
)

// Fallback messages shown when the server did not supply one.
const (
	registerFallbackMessage = "registration failed"
	loginFallbackMessage    = "login failed"
)

// AuthError is the failure result of Register and Login. Error() is the
// display message (server-supplied when available); the underlying cause
// stays reachable through Unwrap for errors.Is/As.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// Store holds the current credential and profile. Every credential change
// goes through setSession, which persists the new value before the change is
// considered complete, so a restart recovers the credential (though not the
// profile — that returns only with the next auth response).
//
// The mutex guards field access only; it is never held across a network
// call. Overlapping auth calls therefore race and the last response to
// resolve wins the credential and profile, same as the behavior users see
// in the web client.
type Store struct {
	client api.Client
	creds  credentials.Repository

	mu      sync.RWMutex
	token   string
	user    *models.User
	loading bool
}

// NewStore builds a Store, restoring any credential persisted by a previous
// run. The profile is not persisted and starts empty.
func NewStore(ctx context.Context, client api.Client, creds credentials.Repository) (*Store, error) {
	token, err := creds.Token(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{client: client, creds: creds, token: token}, nil
}

// Register creates an account and, on success, adopts the returned
// credential and profile. On failure the previous session state is left
// untouched and the returned error carries a display message.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return &AuthError{Message: api.ErrorMessage(err, registerFallbackMessage), Err: err}
	}
	return s.setSession(ctx, resp.Token, resp.User)
}

// Login authenticates and, on success, adopts the returned credential and
// profile. Same failure contract as Register.
func (s *Store) Login(ctx context.Context, req models.LoginRequest) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return &AuthError{Message: api.ErrorMessage(err, loginFallbackMessage), Err: err}
	}
	return s.setSession(ctx, resp.Token, resp.User)
}

// Logout clears the credential and profile. No network call is made; logging
// out while already logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	return s.setSession(ctx, "", nil)
}

// IsAuthenticated reports whether a credential is held. Credential presence
// is the sole source of truth for the authenticated state.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// CurrentUser returns the profile snapshot from the last successful auth
// operation, or nil (including after a restart, until the next login).
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the held credential, or an empty string.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Loading reports whether an auth operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// setSession is the single setter for the credential and profile. The
// persistence write happens together with the in-memory mutation, under the
// same lock; if persisting fails, memory is left unchanged and the error is
// returned to the caller.
func (s *Store) setSession(ctx context.Context, token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		if err := s.creds.Clear(ctx); err != nil {
			return err
		}
	} else {
		if err := s.creds.Save(ctx, token); err != nil {
			return err
		}
	}

	s.token = token
	s.user = user
	return nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
