package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkuznetsova/habitadm/internal/api"
)

// fakeBackend stands in for the platform API during session tests.
type fakeBackend struct {
	token   string
	isAdmin bool
	// when false, /auth/me rejects everything with 401
	acceptToken bool
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if r.PostForm.Get("username") != "admin" || r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": b.token})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !b.acceptToken || r.Header.Get("Authorization") != "Bearer "+b.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "username": "admin", "is_active": true, "is_admin": b.isAdmin,
		})
	})
	return mux
}

func newTestManager(t *testing.T, backend *fakeBackend) (*Manager, *MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	store := &MemoryStore{}
	var mgr *Manager
	client := api.NewClient(srv.URL, api.WithUnauthorizedHook(func() {
		if mgr != nil {
			mgr.Teardown()
		}
	}))
	mgr = New(client, store)
	return mgr, store
}

func TestLogin_Success(t *testing.T) {
	mgr, store := newTestManager(t, &fakeBackend{token: "tok-1", isAdmin: true, acceptToken: true})

	me, err := mgr.Login(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if me.Username != "admin" {
		t.Errorf("operator = %q, want admin", me.Username)
	}
	if !mgr.LoggedIn() {
		t.Error("manager must report logged in")
	}
	if tok, _ := store.Get(); tok != "tok-1" {
		t.Errorf("persisted token = %q, want tok-1", tok)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	mgr, store := newTestManager(t, &fakeBackend{token: "tok-1", isAdmin: true, acceptToken: true})

	_, err := mgr.Login(context.Background(), "admin", "wrong")
	if !api.IsAuthError(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if mgr.LoggedIn() {
		t.Error("failed login must not open a session")
	}
	if _, err := store.Get(); err != ErrNoToken {
		t.Error("failed login must not persist a token")
	}
}

func TestLogin_NonAdminDiscardsToken(t *testing.T) {
	mgr, store := newTestManager(t, &fakeBackend{token: "tok-1", isAdmin: false, acceptToken: true})

	_, err := mgr.Login(context.Background(), "admin", "secret")
	if !api.IsAuthError(err) {
		t.Fatalf("expected AuthError for non-admin account, got %v", err)
	}
	if got := err.Error(); got != "Учётная запись не имеет прав администратора" {
		t.Errorf("unexpected message %q", got)
	}
	if mgr.LoggedIn() {
		t.Error("non-admin login must not open a session")
	}
	if _, err := store.Get(); err != ErrNoToken {
		t.Error("non-admin token must be discarded, not persisted")
	}
}

func TestRestore_ValidToken(t *testing.T) {
	mgr, store := newTestManager(t, &fakeBackend{token: "tok-1", isAdmin: true, acceptToken: true})
	store.Set("tok-1")

	me, ok := mgr.Restore(context.Background())
	if !ok {
		t.Fatal("expected restore to succeed")
	}
	if me.Username != "admin" {
		t.Errorf("operator = %q", me.Username)
	}
}

func TestRestore_InvalidTokenClearedSilently(t *testing.T) {
	mgr, store := newTestManager(t, &fakeBackend{token: "tok-1", isAdmin: true, acceptToken: false})
	store.Set("tok-1")

	if _, ok := mgr.Restore(context.Background()); ok {
		t.Fatal("restore must fail for a rejected token")
	}
	if _, err := store.Get(); err != ErrNoToken {
		t.Error("rejected token must be cleared from the store")
	}
	if mgr.LoggedIn() {
		t.Error("manager must report not logged in")
	}
}

func TestRestore_NonAdminCleared(t *testing.T) {
	mgr, store := newTestManager(t, &fakeBackend{token: "tok-1", isAdmin: false, acceptToken: true})
	store.Set("tok-1")

	if _, ok := mgr.Restore(context.Background()); ok {
		t.Fatal("restore must fail for a non-admin identity")
	}
	if _, err := store.Get(); err != ErrNoToken {
		t.Error("non-admin token must be cleared from the store")
	}
}

func TestRestore_NoToken(t *testing.T) {
	mgr, _ := newTestManager(t, &fakeBackend{token: "tok-1", isAdmin: true, acceptToken: true})
	if _, ok := mgr.Restore(context.Background()); ok {
		t.Fatal("restore without a persisted token must fail")
	}
}

func TestLogout(t *testing.T) {
	mgr, store := newTestManager(t, &fakeBackend{token: "tok-1", isAdmin: true, acceptToken: true})
	if _, err := mgr.Login(context.Background(), "admin", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	mgr.Logout()
	if mgr.LoggedIn() {
		t.Error("logout must close the session")
	}
	if _, err := store.Get(); err != ErrNoToken {
		t.Error("logout must clear the persisted token")
	}
}
