// Package session owns the authenticated identity for the running client:
// who the current user is, what went wrong last, and the administrative
// user list. It is the only writer of the persisted credential.
package session

import (
	"context"

	"github.com/skywhysales/skyclient/internal/client/api"
	"github.com/skywhysales/skyclient/internal/client/credstore"
	"github.com/skywhysales/skyclient/internal/client/models"
	"github.com/skywhysales/skyclient/internal/logging"
)

// Session is constructed once at application start and handed to the route
// guard and to views. Operations absorb their own failures into Err; none
// of them re-raises, so the error field is the sole observable outcome of
// a failed call. The type is meant for single-goroutine use: every
// operation runs to completion before the next one starts, so no locking
// is needed.
type Session struct {
	api   api.UserAPI
	creds credstore.Store
	log   logging.Logger

	current *models.User
	lastErr string
	users   []models.User
}

// New binds a session to the backend client and the credential cache.
func New(userAPI api.UserAPI, creds credstore.Store, log logging.Logger) *Session {
	return &Session{api: userAPI, creds: creds, log: log}
}

// Current returns the authenticated identity, or nil when nobody is
// logged in.
func (s *Session) Current() *models.User {
	return s.current
}

// Err returns the message of the most recent failed operation, or "" when
// the last operation succeeded.
func (s *Session) Err() string {
	return s.lastErr
}

// Users returns the administrative user list from the last ListUsers call.
func (s *Session) Users() []models.User {
	return s.users
}

// Authenticated reports whether an identity is present.
func (s *Session) Authenticated() bool {
	return s.current != nil
}

// HasStoredCredential reports whether a credential is remembered. Storage
// errors are logged and treated as "nothing remembered" so that a broken
// local database degrades to an ordinary logged-out start.
func (s *Session) HasStoredCredential(ctx context.Context) bool {
	cred, err := s.creds.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "credential load failed", "error", err)
		return false
	}
	return cred != nil
}

// Login authenticates with the backend. On success the identity is
// replaced, the error cleared, and, only when nothing is remembered yet,
// the submitted login together with the echoed password is persisted.
// On a failure the server acknowledged (any response, 502 included) the
// remembered credential is deleted: the server has declared it invalid,
// and keeping it would retry a doomed login on every navigation.
func (s *Session) Login(ctx context.Context, login, password string) {
	u, err := s.api.Authenticate(ctx, login, password)
	if err != nil {
		s.lastErr = api.Classify(err)
		if api.HasResponse(err) {
			s.dropCredential(ctx)
		}
		return
	}

	s.current = u
	s.lastErr = ""
	s.rememberCredential(ctx, login, u.Password)
}

// SilentReauthenticate replays the remembered credential through Login
// without prompting. It is a no-op when nothing is remembered.
func (s *Session) SilentReauthenticate(ctx context.Context) {
	cred, err := s.creds.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "credential load failed", "error", err)
		return
	}
	if cred == nil {
		return
	}
	s.log.Info(ctx, "restoring session", "login", cred.Login)
	s.Login(ctx, cred.Login, cred.Password)
}

// Register creates an account and signs the new user in, persisting the
// credential exactly as Login does.
func (s *Session) Register(ctx context.Context, profile models.User) {
	created, err := s.api.Register(ctx, profile)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}

	s.current = created
	s.lastErr = ""
	s.rememberCredential(ctx, profile.Email, created.Password)
}

// ListUsers replaces the administrative user list.
func (s *Session) ListUsers(ctx context.Context) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}
	s.users = users
	s.lastErr = ""
}

// FetchUser returns a single account without touching the identity or the
// user list. On failure it returns nil and sets Err.
func (s *Session) FetchUser(ctx context.Context, id int) *models.User {
	u, err := s.api.GetUser(ctx, id)
	if err != nil {
		s.lastErr = api.Classify(err)
		return nil
	}
	s.lastErr = ""
	return u
}

// EditUser submits an account update. Editing the caller's own account
// replaces the identity with the server's record; editing anyone else only
// updates the matching user-list entry.
func (s *Session) EditUser(ctx context.Context, user models.User) {
	updated, err := s.api.EditUser(ctx, user)
	if err != nil {
		s.lastErr = api.Classify(err)
		return
	}

	if s.current != nil && updated.ID == s.current.ID {
		s.current = updated
	} else {
		for i := range s.users {
			if s.users[i].ID == updated.ID {
				key := s.users[i].Key
				s.users[i] = *updated
				s.users[i].Key = key
				break
			}
		}
	}
	s.lastErr = ""
}

// DeleteUser removes an account. Unless the caller deletes their own
// account or holds the manager role the call is denied locally, without a
// request. Deleting the own account also ends the session.
func (s *Session) DeleteUser(ctx context.Context, id int) {
	if s.current == nil || (s.current.ID != id && !s.current.Role.Privileged()) {
		s.lastErr = api.MsgInsufficientPrivilege
		return
	}

	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.lastErr = api.Classify(err)
		return
	}

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			break
		}
	}
	if s.current.ID == id {
		s.current = nil
	}
	s.lastErr = ""
}

// Logout ends the session locally: no request is made. The identity and
// the remembered credential are both cleared.
func (s *Session) Logout(ctx context.Context) {
	s.current = nil
	s.lastErr = ""
	s.dropCredential(ctx)
}

func (s *Session) rememberCredential(ctx context.Context, login, echoedPassword string) {
	existing, err := s.creds.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "credential load failed", "error", err)
		return
	}
	if existing != nil {
		// Written at most once per login session, never overwritten.
		return
	}
	cred := models.Credential{Login: login, Password: echoedPassword}
	if err := s.creds.Save(ctx, cred); err != nil {
		s.log.Error(ctx, "credential save failed", "error", err)
	}
}

func (s *Session) dropCredential(ctx context.Context) {
	if err := s.creds.Delete(ctx); err != nil {
		s.log.Error(ctx, "credential delete failed", "error", err)
	}
}
