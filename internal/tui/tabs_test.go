package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkuznetsova/habitadm/internal/api"
	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/session"
)

func newTestModel() Model {
	client := api.NewClient("http://127.0.0.1:0")
	return NewModel(client, session.New(client, &session.MemoryStore{}))
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabCycleForward(t *testing.T) {
	order := []constants.SessionState{
		constants.StateAnalytics,
		constants.StateUsers,
		constants.StateHabits,
		constants.StateChats,
	}

	for i, s := range order {
		want := order[(i+1)%len(order)]
		if got := nextTab(s); got != want {
			t.Errorf("nextTab(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestTabCycleBackward(t *testing.T) {
	order := []constants.SessionState{
		constants.StateAnalytics,
		constants.StateUsers,
		constants.StateHabits,
		constants.StateChats,
	}

	for i, s := range order {
		want := order[(i+len(order)-1)%len(order)]
		if got := prevTab(s); got != want {
			t.Errorf("prevTab(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestTabCycleFromModal(t *testing.T) {
	// Modals are not part of the cycle and fall back to the first tab.
	if got := nextTab(constants.StateLogEditor); got != constants.StateAnalytics {
		t.Errorf("nextTab from modal = %v, want analytics", got)
	}
}

func TestSearchDebounceStaleGenerationDiscarded(t *testing.T) {
	m := newTestModel()
	m.state = constants.StateUsers
	m.usersPage = 3
	m.usersSearchGen = 5

	// A tick from an older keystroke must not fire a query or move pages.
	updated, cmd := m.Update(searchDebounceMsg{state: constants.StateUsers, gen: 4})
	m = updated.(Model)
	if cmd != nil {
		t.Error("stale debounce tick fired a command")
	}
	if m.usersPage != 3 || m.loading {
		t.Errorf("stale debounce tick changed state: page=%d loading=%t", m.usersPage, m.loading)
	}

	// The current generation fires the query and resets to the first page.
	updated, cmd = m.Update(searchDebounceMsg{state: constants.StateUsers, gen: 5})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("current debounce tick fired no command")
	}
	if m.usersPage != 0 {
		t.Errorf("usersPage = %d, want 0 after new search", m.usersPage)
	}
	if !m.loading {
		t.Error("expected loading after debounce fired")
	}
}

func TestSearchDebounceWrongTabIgnored(t *testing.T) {
	m := newTestModel()
	m.state = constants.StateHabits
	m.habitsPage = 2
	m.habitsSearchGen = 1

	updated, cmd := m.Update(searchDebounceMsg{state: constants.StateUsers, gen: 1})
	m = updated.(Model)
	if cmd != nil || m.habitsPage != 2 {
		t.Errorf("users debounce touched habits tab: page=%d", m.habitsPage)
	}
}

func TestConfirmAcceptRunsPendingAction(t *testing.T) {
	m := newTestModel()
	m.state = constants.StateUsers

	called := false
	updated, _ := m.Update(constants.ConfirmationMsg{
		Message: "Удалить пользователя?",
		Action: func() tea.Cmd {
			called = true
			return nil
		},
	})
	m = updated.(Model)
	if m.state != constants.StateConfirm {
		t.Fatalf("state = %v, want confirm", m.state)
	}
	if m.prevState != constants.StateUsers {
		t.Fatalf("prevState = %v, want users", m.prevState)
	}

	updated, _ = m.Update(keyPress("y"))
	m = updated.(Model)
	if !called {
		t.Error("accepted confirmation did not run the pending action")
	}
	if m.state != constants.StateUsers {
		t.Errorf("state = %v, want users after confirm", m.state)
	}
	if m.pendingAction != nil {
		t.Error("pendingAction not cleared after accept")
	}
}

func TestConfirmDeclineDiscardsPendingAction(t *testing.T) {
	m := newTestModel()
	m.state = constants.StateHabits

	called := false
	updated, _ := m.Update(constants.ConfirmationMsg{
		Message: "Удалить привычку?",
		Action: func() tea.Cmd {
			called = true
			return nil
		},
	})
	m = updated.(Model)

	updated, _ = m.Update(keyPress("n"))
	m = updated.(Model)
	if called {
		t.Error("declined confirmation ran the pending action")
	}
	if m.state != constants.StateHabits {
		t.Errorf("state = %v, want habits after decline", m.state)
	}
	if m.pendingAction != nil {
		t.Error("pendingAction not cleared after decline")
	}
}

func TestSessionExpiryReturnsToLogin(t *testing.T) {
	m := newTestModel()
	m.state = constants.StateUsers
	m.operator = "admin"
	m.loading = true

	updated, _ := m.Update(loadErrMsg{state: constants.StateUsers, err: api.ErrSessionExpired})
	m = updated.(Model)
	if m.state != constants.StateLogin {
		t.Fatalf("state = %v, want login after expired session", m.state)
	}
	if m.operator != "" {
		t.Error("operator not cleared after expired session")
	}
	if m.loading {
		t.Error("loading not reset on the login screen")
	}
	if m.form == nil {
		t.Error("login form not initialized")
	}
}

func TestSessionExpiryDuringActionReturnsToLogin(t *testing.T) {
	m := newTestModel()
	m.state = constants.StateHabits
	m.operator = "admin"

	updated, _ := m.Update(actionErrMsg{err: api.ErrSessionExpired})
	m = updated.(Model)
	if m.state != constants.StateLogin {
		t.Fatalf("state = %v, want login after expired session", m.state)
	}
	if m.form == nil {
		t.Error("login form not initialized")
	}
}
