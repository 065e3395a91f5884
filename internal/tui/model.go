package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mkuznetsova/habitadm/internal/api"
	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
	"github.com/mkuznetsova/habitadm/internal/session"
	"github.com/mkuznetsova/habitadm/internal/tui/components/analytics"
	"github.com/mkuznetsova/habitadm/internal/tui/components/chats"
	"github.com/mkuznetsova/habitadm/internal/tui/components/habits"
	"github.com/mkuznetsova/habitadm/internal/tui/components/logeditor"
	"github.com/mkuznetsova/habitadm/internal/tui/components/users"
	"github.com/mkuznetsova/habitadm/internal/view"
)

// LoginFormModel backs the credential form.
type LoginFormModel struct {
	Username string
	Password string
}

// GenerateFormModel backs the synthetic-log prompt. Values stay strings
// until the form completes; both are validated as integers.
type GenerateFormModel struct {
	Days    string
	Percent string
}

type Model struct {
	client  *api.Client
	session *session.Manager

	state     constants.SessionState
	prevState constants.SessionState
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	loading   bool
	quitting  bool
	width     int
	height    int

	analyticsModel analytics.Model
	usersModel     users.Model
	habitsModel    habits.Model
	chatsModel     chats.Model
	editorModel    logeditor.Model

	usersPage  int
	habitsPage int
	chatsPage  int

	usersSearchGen  int
	habitsSearchGen int

	form      *huh.Form
	loginForm *LoginFormModel
	genForm   *GenerateFormModel
	genHabit  models.Habit

	confirmMessage string
	pendingAction  func() tea.Cmd

	toast        string
	toastIsError bool
	toastGen     int

	operator string
}

// NewModel builds the root TUI model. When the session manager already holds
// a restored session the dashboard opens directly, otherwise the login form
// is shown.
func NewModel(client *api.Client, sess *session.Manager) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		client:         client,
		session:        sess,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		spinner:        sp,
		state:          constants.StateLogin,
		analyticsModel: analytics.New(),
		usersModel:     users.New(),
		habitsModel:    habits.New(),
		chatsModel:     chats.New(),
		editorModel:    logeditor.New(),
	}

	if sess.LoggedIn() {
		m.state = constants.StateAnalytics
		m.operator = sess.Operator().Username
		m.loading = true
	} else {
		m.initLoginForm()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == constants.StateLogin {
		return m.form.Init()
	}
	return tea.Batch(m.spinner.Tick, m.loadAnalytics())
}

func (m *Model) initLoginForm() {
	m.loginForm = &LoginFormModel{}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Логин").
			Value(&m.loginForm.Username).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("введите логин")
				}
				return nil
			}),
		huh.NewInput().
			Title("Пароль").
			EchoMode(huh.EchoModePassword).
			Value(&m.loginForm.Password),
	))
}

func (m *Model) initGenerateForm(habit models.Habit) {
	m.genHabit = habit
	m.genForm = &GenerateFormModel{Days: "30", Percent: "75"}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Сколько дней сгенерировать?").
			Value(&m.genForm.Days).
			Validate(validateInt(1, 365)),
		huh.NewInput().
			Title("Процент выполнения (0-100)?").
			Value(&m.genForm.Percent).
			Validate(validateInt(0, 100)),
	))
}

func validateInt(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("введите целое число")
		}
		if n < min || n > max {
			return fmt.Errorf("значение от %d до %d", min, max)
		}
		return nil
	}
}

// ─── Load commands ───

func (m Model) loadAnalytics() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		data, err := client.Analytics(context.Background())
		if err != nil {
			return loadErrMsg{state: constants.StateAnalytics, err: err}
		}
		return analyticsLoadedMsg{data: data}
	}
}

func (m Model) loadUsers() tea.Cmd {
	client := m.client
	page := m.usersPage
	search := m.usersModel.SearchValue()
	return func() tea.Msg {
		data, err := client.Users(context.Background(), page*constants.PageSize, constants.PageSize, search)
		if err != nil {
			return loadErrMsg{state: constants.StateUsers, err: err}
		}
		return usersLoadedMsg{page: data, pageIdx: page}
	}
}

func (m Model) loadHabits() tea.Cmd {
	client := m.client
	page := m.habitsPage
	search := m.habitsModel.SearchValue()
	return func() tea.Msg {
		data, err := client.Habits(context.Background(), page*constants.PageSize, constants.PageSize, search)
		if err != nil {
			return loadErrMsg{state: constants.StateHabits, err: err}
		}
		return habitsLoadedMsg{page: data, pageIdx: page}
	}
}

func (m Model) loadChats() tea.Cmd {
	client := m.client
	page := m.chatsPage
	return func() tea.Msg {
		data, err := client.Chats(context.Background(), page*constants.PageSize, constants.PageSize)
		if err != nil {
			return loadErrMsg{state: constants.StateChats, err: err}
		}
		return chatsLoadedMsg{page: data, pageIdx: page}
	}
}

func (m Model) loadLogs(habitID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		logs, err := client.HabitLogs(context.Background(), habitID, constants.CalendarDays)
		if err != nil {
			return loadErrMsg{state: constants.StateLogEditor, err: err}
		}
		return logsLoadedMsg{habitID: habitID, logs: logs}
	}
}

// loadState returns the fetch command for a tab or modal state.
func (m Model) loadState(state constants.SessionState) tea.Cmd {
	switch state {
	case constants.StateAnalytics:
		return m.loadAnalytics()
	case constants.StateUsers:
		return m.loadUsers()
	case constants.StateHabits:
		return m.loadHabits()
	case constants.StateChats:
		return m.loadChats()
	case constants.StateLogEditor:
		return m.loadLogs(m.editorModel.Habit().ID)
	}
	return nil
}

// ─── Action commands ───

// doAction runs one mutating call; on success the named view reloads.
func (m Model) doAction(reload constants.SessionState, message string, fn func(context.Context) (models.ActionResult, error)) tea.Cmd {
	return func() tea.Msg {
		res, err := fn(context.Background())
		if err != nil {
			return actionErrMsg{err: err}
		}
		if message == "" {
			message = res.Message
		}
		return actionDoneMsg{message: message, reload: reload}
	}
}

func (m Model) toggleDayCmd(msg logeditor.ToggleDayMsg) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.EditLog(context.Background(), api.EditLogRequest{
			HabitID:   msg.HabitID,
			Date:      msg.Date,
			Completed: msg.Completed,
			Note:      "Edited by admin",
		})
		if err != nil {
			return actionErrMsg{err: err}
		}
		icon := "❌"
		if msg.Completed {
			icon = "✅"
		}
		return actionDoneMsg{message: fmt.Sprintf("%s: %s", msg.Date, icon), reload: constants.StateLogEditor}
	}
}

func (m Model) loginCmd(username, password string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		me, err := sess.Login(context.Background(), username, password)
		if err != nil {
			return loginErrMsg{err: err}
		}
		return loginDoneMsg{me: me}
	}
}

// showToast installs a transient notification and schedules its expiry.
func (m *Model) showToast(message string, isError bool) tea.Cmd {
	m.toast = message
	m.toastIsError = isError
	m.toastGen++
	gen := m.toastGen
	return tea.Tick(constants.ToastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{gen: gen}
	})
}

// ─── Help ───

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Refresh, m.keys.Help, m.keys.Quit}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{
		m.keys.Tab, m.keys.ShiftTab,
		m.keys.Analytics, m.keys.Users, m.keys.Habits, m.keys.Chats,
		m.keys.Refresh, m.keys.Logout, m.keys.Help, m.keys.Quit,
	}
	return [][]key.Binding{global}
}

// searchFocused reports whether a tab's search field currently owns the
// keyboard, in which case global bindings must not fire.
func (m Model) searchFocused() bool {
	switch m.state {
	case constants.StateUsers:
		return m.usersModel.Searching()
	case constants.StateHabits:
		return m.habitsModel.Searching()
	}
	return false
}

// calendarCells recomputes the editor grid from a fetched log set.
func calendarCells(logs []models.HabitLog) []view.Cell {
	return view.BuildCalendar(logs, time.Now())
}
