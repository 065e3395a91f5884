package tui

import (
	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
)

// analyticsLoadedMsg delivers the aggregate snapshot.
type analyticsLoadedMsg struct {
	data models.Analytics
}

// usersLoadedMsg delivers one fetched page of users.
type usersLoadedMsg struct {
	page    models.UserPage
	pageIdx int
}

type habitsLoadedMsg struct {
	page    models.HabitPage
	pageIdx int
}

type chatsLoadedMsg struct {
	page    models.ChatPage
	pageIdx int
}

// logsLoadedMsg delivers the log history for the editor's habit.
type logsLoadedMsg struct {
	habitID int
	logs    []models.HabitLog
}

// loadErrMsg reports a failed view fetch; the view body shows the error
// inline.
type loadErrMsg struct {
	state constants.SessionState
	err   error
}

// actionDoneMsg reports a successful mutation: toast the message, then
// reload the view the mutation belongs to.
type actionDoneMsg struct {
	message string
	reload  constants.SessionState
}

// actionErrMsg reports a failed mutation; surfaced as an error toast.
type actionErrMsg struct {
	err error
}

// toastClearMsg hides the toast unless a newer one replaced it.
type toastClearMsg struct {
	gen int
}

// searchDebounceMsg fires when a search field has been idle long enough.
// Stale generations are ignored: any keystroke bumps the counter.
type searchDebounceMsg struct {
	state constants.SessionState
	gen   int
}

// loginDoneMsg reports a successful credential exchange and admin check.
type loginDoneMsg struct {
	me models.Identity
}

// loginErrMsg keeps the UI on the login screen with an error.
type loginErrMsg struct {
	err error
}
