package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"total_users": 3})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-123")

	a, err := c.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, 3, a.TotalUsers)
}

func TestClient_NoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Analytics(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedTearsDownSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	hookCalled := false
	c := NewClient(srv.URL, WithUnauthorizedHook(func() { hookCalled = true }))
	c.SetToken("stale")

	_, err := c.Users(context.Background(), 0, 20, "")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, hookCalled, "401 must invoke the teardown hook")
	assert.Empty(t, c.Token(), "401 must clear the in-memory token")
}

func TestClient_ForbiddenKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok")

	_, err := c.Users(context.Background(), 0, 20, "")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "tok", c.Token(), "403 must not clear the token")
}

func TestClient_RequestErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Habit not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).DeleteHabit(context.Background(), 99)
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusNotFound, re.Status)
	assert.Equal(t, "Habit not found", re.Error())
}

func TestClient_RequestErrorFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Analytics(context.Background())
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Error 502", re.Error())
}

func TestClient_LoginFormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "admin", r.PostForm.Get("username"))
		assert.Equal(t, "p@ss w0rd", r.PostForm.Get("password"))
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-777"})
	}))
	defer srv.Close()

	token, err := NewClient(srv.URL).Login(context.Background(), "admin", "p@ss w0rd")
	require.NoError(t, err)
	assert.Equal(t, "tok-777", token)
}

func TestClient_LoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Login(context.Background(), "admin", "wrong")
	var ae *AuthError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Неверный логин или пароль", ae.Message)
}

func TestClient_QueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Users(context.Background(), 40, 20, "анна иванова")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "skip=40")
	assert.Contains(t, gotQuery, "limit=20")
	assert.Contains(t, gotQuery, "search=%D0%B0%D0%BD%D0%BD%D0%B0+%D0%B8%D0%B2%D0%B0%D0%BD%D0%BE%D0%B2%D0%B0")
}

func TestClient_MutationPayloads(t *testing.T) {
	var (
		gotPath string
		gotBody map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotBody = nil
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	_, err := c.EditLog(ctx, EditLogRequest{HabitID: 5, Date: "2025-06-15", Completed: true, Note: "Edited by admin"})
	require.NoError(t, err)
	assert.Equal(t, "POST /admin/logs/edit", gotPath)
	assert.Equal(t, float64(5), gotBody["habit_id"])
	assert.Equal(t, "2025-06-15", gotBody["date"])
	assert.Equal(t, true, gotBody["completed"])
	assert.Equal(t, "Edited by admin", gotBody["note"])

	_, err = c.GenerateLogs(ctx, GenerateLogsRequest{HabitID: 5, Days: 30, CompletionPercent: 75})
	require.NoError(t, err)
	assert.Equal(t, "POST /admin/logs/generate", gotPath)
	assert.Equal(t, float64(30), gotBody["days"])
	assert.Equal(t, float64(75), gotBody["completion_percent"])

	_, err = c.ToggleAdmin(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "PATCH /admin/users/7/toggle-admin", gotPath)

	_, err = c.DeleteLog(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "DELETE /admin/logs/11", gotPath)
}
