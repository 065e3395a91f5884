// Package session manages the operator's login lifecycle: credential
// exchange, the mandatory admin gate, token persistence, and teardown on
// expiry. It never talks to the network itself; all calls go through the
// api client.
package session

import (
	"context"
	"errors"

	"github.com/mkuznetsova/habitadm/internal/api"
	"github.com/mkuznetsova/habitadm/internal/logger"
	"github.com/mkuznetsova/habitadm/internal/models"
)

// Manager holds the current session state.
type Manager struct {
	client   *api.Client
	store    TokenStore
	operator models.Identity
	loggedIn bool
}

// New creates a session manager over the given client and token store.
func New(client *api.Client, store TokenStore) *Manager {
	return &Manager{client: client, store: store}
}

// Login exchanges credentials for a token, verifies the account has admin
// rights, and persists the token. A valid but non-admin login discards the
// token and fails with an AuthError.
func (m *Manager) Login(ctx context.Context, username, password string) (models.Identity, error) {
	token, err := m.client.Login(ctx, username, password)
	if err != nil {
		return models.Identity{}, err
	}

	m.client.SetToken(token)
	me, err := m.client.Me(ctx)
	if err != nil {
		m.client.ClearToken()
		return models.Identity{}, err
	}
	if !me.IsAdmin {
		m.client.ClearToken()
		return models.Identity{}, &api.AuthError{Message: "Учётная запись не имеет прав администратора"}
	}

	if err := m.store.Set(token); err != nil {
		// A session that does not survive restarts is still a session.
		logger.Warn("Failed to persist token", "error", err)
	}
	m.operator = me
	m.loggedIn = true
	logger.Info("Operator logged in", "username", me.Username)
	return me, nil
}

// Restore re-validates a previously persisted token. Any failure (no token,
// network error, 401, non-admin) silently clears the session and reports
// not-logged-in.
func (m *Manager) Restore(ctx context.Context) (models.Identity, bool) {
	token, err := m.store.Get()
	if err != nil {
		if !errors.Is(err, ErrNoToken) {
			logger.Warn("Token store unavailable", "error", err)
		}
		return models.Identity{}, false
	}

	m.client.SetToken(token)
	me, err := m.client.Me(ctx)
	if err != nil || !me.IsAdmin {
		m.Teardown()
		return models.Identity{}, false
	}

	m.operator = me
	m.loggedIn = true
	logger.Info("Session restored", "username", me.Username)
	return me, true
}

// Logout clears the in-memory and persisted token.
func (m *Manager) Logout() {
	m.client.ClearToken()
	m.Teardown()
	logger.Info("Operator logged out")
}

// Teardown drops the persisted token and marks the session closed. It is
// also wired as the client's 401 hook, where the client has already cleared
// its in-memory token.
func (m *Manager) Teardown() {
	if err := m.store.Delete(); err != nil {
		logger.Warn("Failed to clear persisted token", "error", err)
	}
	m.operator = models.Identity{}
	m.loggedIn = false
}

// Operator returns the identity of the logged-in operator.
func (m *Manager) Operator() models.Identity {
	return m.operator
}

// LoggedIn reports whether a validated admin session is active.
func (m *Manager) LoggedIn() bool {
	return m.loggedIn
}
