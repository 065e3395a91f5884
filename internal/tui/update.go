package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mkuznetsova/habitadm/internal/api"
	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
	"github.com/mkuznetsova/habitadm/internal/tui/components/chats"
	"github.com/mkuznetsova/habitadm/internal/tui/components/habits"
	"github.com/mkuznetsova/habitadm/internal/tui/components/logeditor"
	"github.com/mkuznetsova/habitadm/internal/tui/components/users"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 6
		m.analyticsModel.SetSize(msg.Width-4, contentHeight)
		m.usersModel.SetSize(msg.Width-4, contentHeight)
		m.habitsModel.SetSize(msg.Width-4, contentHeight)
		m.chatsModel.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analyticsLoadedMsg:
		m.loading = false
		m.analyticsModel.SetData(msg.data)
		return m, nil

	case usersLoadedMsg:
		m.loading = false
		m.usersModel.SetData(msg.page, msg.pageIdx)
		return m, nil

	case habitsLoadedMsg:
		m.loading = false
		m.habitsModel.SetData(msg.page, msg.pageIdx)
		return m, nil

	case chatsLoadedMsg:
		m.loading = false
		m.chatsModel.SetData(msg.page, msg.pageIdx)
		return m, nil

	case logsLoadedMsg:
		m.loading = false
		if msg.habitID == m.editorModel.Habit().ID {
			m.editorModel.SetLogs(calendarCells(msg.logs), msg.logs)
		}
		return m, nil

	case loadErrMsg:
		m.loading = false
		if errors.Is(msg.err, api.ErrSessionExpired) {
			return m.toLogin("Сессия истекла, войдите заново")
		}
		switch msg.state {
		case constants.StateAnalytics:
			m.analyticsModel.SetError(msg.err.Error())
		case constants.StateUsers:
			m.usersModel.SetError(msg.err.Error())
		case constants.StateHabits:
			m.habitsModel.SetError(msg.err.Error())
		case constants.StateChats:
			m.chatsModel.SetError(msg.err.Error())
		case constants.StateLogEditor:
			m.editorModel.SetError(msg.err.Error())
		}
		return m, nil

	case actionDoneMsg:
		cmds := []tea.Cmd{m.showToast(msg.message, false)}
		if reload := m.loadState(msg.reload); reload != nil {
			cmds = append(cmds, reload)
		}
		return m, tea.Batch(cmds...)

	case actionErrMsg:
		if errors.Is(msg.err, api.ErrSessionExpired) {
			return m.toLogin("Сессия истекла, войдите заново")
		}
		return m, m.showToast(msg.err.Error(), true)

	case toastClearMsg:
		if msg.gen == m.toastGen {
			m.toast = ""
		}
		return m, nil

	case searchDebounceMsg:
		return m.handleSearchDebounce(msg)

	case loginDoneMsg:
		m.operator = msg.me.Username
		m.state = constants.StateAnalytics
		m.loading = true
		m.form = nil
		return m, tea.Batch(m.spinner.Tick, m.loadAnalytics())

	case loginErrMsg:
		m.loading = false
		m.initLoginForm()
		m.toast = ""
		return m, tea.Batch(m.form.Init(), m.showToast(msg.err.Error(), true))

	case constants.ConfirmationMsg:
		m.confirmMessage = msg.Message
		m.pendingAction = msg.Action
		m.prevState = m.state
		m.state = constants.StateConfirm
		return m, nil
	}

	// Component action messages arrive regardless of which tab produced
	// them, so they are routed before state-specific key handling.
	if model, cmd, handled := m.handleComponentMsg(msg); handled {
		return model, cmd
	}

	switch m.state {
	case constants.StateLogin:
		return m.updateLogin(msg)
	case constants.StateGenerateForm:
		return m.updateGenerateForm(msg)
	case constants.StateConfirm:
		return m.updateConfirm(msg)
	case constants.StateLogEditor:
		var cmd tea.Cmd
		m.editorModel, cmd = m.editorModel.Update(msg)
		return m, cmd
	}

	return m.updateTabs(msg)
}

// toLogin tears the UI back to the login screen. The session layer has
// already dropped the token.
func (m Model) toLogin(reason string) (tea.Model, tea.Cmd) {
	m.state = constants.StateLogin
	m.operator = ""
	m.loading = false
	m.initLoginForm()
	return m, tea.Batch(m.form.Init(), m.showToast(reason, true))
}

func (m Model) handleComponentMsg(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	// Users tab
	case users.SearchChangedMsg:
		m.usersSearchGen++
		return m, debounceCmd(constants.StateUsers, m.usersSearchGen), true
	case users.PrevPageMsg:
		m.usersPage = m.usersModel.Pagination().Prev()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadUsers()), true
	case users.NextPageMsg:
		m.usersPage = m.usersModel.Pagination().Next()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadUsers()), true
	case users.BlockMsg:
		u := msg.User
		action := m.confirmAction(fmt.Sprintf("Заблокировать пользователя «%s»?", u.Username), func() tea.Cmd {
			return m.doAction(constants.StateUsers, "Пользователь заблокирован", func(ctx context.Context) (models.ActionResult, error) {
				return m.client.BlockUser(ctx, u.ID)
			})
		})
		return m, action, true
	case users.UnblockMsg:
		u := msg.User
		return m, m.doAction(constants.StateUsers, "Пользователь разблокирован", func(ctx context.Context) (models.ActionResult, error) {
			return m.client.UnblockUser(ctx, u.ID)
		}), true
	case users.ToggleAdminMsg:
		u := msg.User
		return m, m.doAction(constants.StateUsers, "", func(ctx context.Context) (models.ActionResult, error) {
			return m.client.ToggleAdmin(ctx, u.ID)
		}), true
	case users.DeleteMsg:
		u := msg.User
		action := m.confirmAction(fmt.Sprintf("Удалить пользователя «%s» и все его данные?", u.Username), func() tea.Cmd {
			return m.doAction(constants.StateUsers, "Пользователь удалён", func(ctx context.Context) (models.ActionResult, error) {
				return m.client.DeleteUser(ctx, u.ID)
			})
		})
		return m, action, true

	// Habits tab
	case habits.SearchChangedMsg:
		m.habitsSearchGen++
		return m, debounceCmd(constants.StateHabits, m.habitsSearchGen), true
	case habits.PrevPageMsg:
		m.habitsPage = m.habitsModel.Pagination().Prev()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadHabits()), true
	case habits.NextPageMsg:
		m.habitsPage = m.habitsModel.Pagination().Next()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadHabits()), true
	case habits.OpenLogsMsg:
		m.editorModel.Open(msg.Habit)
		m.state = constants.StateLogEditor
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadLogs(msg.Habit.ID)), true
	case habits.GenerateMsg:
		m.initGenerateForm(msg.Habit)
		m.prevState = m.state
		m.state = constants.StateGenerateForm
		return m, m.form.Init(), true
	case habits.ToggleActiveMsg:
		h := msg.Habit
		active := !h.IsActive
		return m, m.doAction(constants.StateHabits, "", func(ctx context.Context) (models.ActionResult, error) {
			return m.client.EditHabit(ctx, h.ID, api.EditHabitRequest{IsActive: &active})
		}), true
	case habits.DeleteMsg:
		h := msg.Habit
		action := m.confirmAction(fmt.Sprintf("Удалить привычку «%s»?", h.Name), func() tea.Cmd {
			return m.doAction(constants.StateHabits, "Привычка удалена", func(ctx context.Context) (models.ActionResult, error) {
				return m.client.DeleteHabit(ctx, h.ID)
			})
		})
		return m, action, true

	// Chats tab
	case chats.PrevPageMsg:
		m.chatsPage = m.chatsModel.Pagination().Prev()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadChats()), true
	case chats.NextPageMsg:
		m.chatsPage = m.chatsModel.Pagination().Next()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadChats()), true

	// Log editor
	case logeditor.ToggleDayMsg:
		return m, m.toggleDayCmd(msg), true
	case logeditor.DeleteLogMsg:
		logID := msg.LogID
		return m, m.doAction(constants.StateLogEditor, "Запись удалена", func(ctx context.Context) (models.ActionResult, error) {
			return m.client.DeleteLog(ctx, logID)
		}), true
	case logeditor.CloseMsg:
		m.state = constants.StateHabits
		return m, nil, true
	}

	return m, nil, false
}

// confirmAction wraps a command behind the y/n confirmation dialog.
func (m Model) confirmAction(message string, action func() tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return constants.ConfirmationMsg{Message: message, Action: action}
	}
}

// debounceCmd delays a re-query until the search field has been idle for
// the debounce window. A newer keystroke bumps the generation and the
// stale tick is discarded.
func debounceCmd(state constants.SessionState, gen int) tea.Cmd {
	return tea.Tick(constants.SearchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{state: state, gen: gen}
	})
}

func (m Model) handleSearchDebounce(msg searchDebounceMsg) (tea.Model, tea.Cmd) {
	switch msg.state {
	case constants.StateUsers:
		if msg.gen != m.usersSearchGen {
			return m, nil
		}
		m.usersPage = 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadUsers())
	case constants.StateHabits:
		if msg.gen != m.habitsSearchGen {
			return m, nil
		}
		m.habitsPage = 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadHabits())
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.loading {
		// Credential exchange in flight, swallow input until it settles.
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		username := strings.TrimSpace(m.loginForm.Username)
		password := m.loginForm.Password
		m.loading = true
		return m, m.loginCmd(username, password)
	case huh.StateAborted:
		m.initLoginForm()
		return m, m.form.Init()
	}
	return m, cmd
}

func (m Model) updateGenerateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Esc cancels the prompt without dispatching anything.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.prevState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		days, _ := strconv.Atoi(strings.TrimSpace(m.genForm.Days))
		percent, _ := strconv.Atoi(strings.TrimSpace(m.genForm.Percent))
		habitID := m.genHabit.ID
		m.state = m.prevState
		return m, m.doAction(constants.StateHabits, "", func(ctx context.Context) (models.ActionResult, error) {
			return m.client.GenerateLogs(ctx, api.GenerateLogsRequest{
				HabitID:           habitID,
				Days:              days,
				CompletionPercent: percent,
			})
		})
	case huh.StateAborted:
		m.state = m.prevState
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			action := m.pendingAction
			m.pendingAction = nil
			m.state = m.prevState
			if action != nil {
				return m, action()
			}
			return m, nil
		case "n", "N", "esc":
			m.pendingAction = nil
			m.state = m.prevState
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateTabs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.searchFocused() {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Logout):
			m.session.Logout()
			return m.toLogin("Вы вышли из системы")
		case key.Matches(keyMsg, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.loadState(m.state))
		case key.Matches(keyMsg, m.keys.Tab):
			return m.switchTab(nextTab(m.state))
		case key.Matches(keyMsg, m.keys.ShiftTab):
			return m.switchTab(prevTab(m.state))
		case key.Matches(keyMsg, m.keys.Analytics):
			return m.switchTab(constants.StateAnalytics)
		case key.Matches(keyMsg, m.keys.Users):
			return m.switchTab(constants.StateUsers)
		case key.Matches(keyMsg, m.keys.Habits):
			return m.switchTab(constants.StateHabits)
		case key.Matches(keyMsg, m.keys.Chats):
			return m.switchTab(constants.StateChats)
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateUsers:
		m.usersModel, cmd = m.usersModel.Update(msg)
	case constants.StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case constants.StateChats:
		m.chatsModel, cmd = m.chatsModel.Update(msg)
	}
	return m, cmd
}

// switchTab activates a tab, resetting its page index to zero and kicking
// off its initial load.
func (m Model) switchTab(state constants.SessionState) (tea.Model, tea.Cmd) {
	m.state = state
	m.loading = true
	switch state {
	case constants.StateUsers:
		m.usersPage = 0
	case constants.StateHabits:
		m.habitsPage = 0
	case constants.StateChats:
		m.chatsPage = 0
	}
	return m, tea.Batch(m.spinner.Tick, m.loadState(state))
}

func nextTab(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateAnalytics:
		return constants.StateUsers
	case constants.StateUsers:
		return constants.StateHabits
	case constants.StateHabits:
		return constants.StateChats
	default:
		return constants.StateAnalytics
	}
}

func prevTab(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateAnalytics:
		return constants.StateChats
	case constants.StateUsers:
		return constants.StateAnalytics
	case constants.StateHabits:
		return constants.StateUsers
	default:
		return constants.StateHabits
	}
}
