package logeditor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
	"github.com/mkuznetsova/habitadm/internal/view"
)

const gridColumns = 7

// ToggleDayMsg asks the root model to upsert a log for one calendar day.
// Completed is the NEW flag to store, already cycled from the day's state.
type ToggleDayMsg struct {
	HabitID   int
	Date      string
	Completed bool
}

// DeleteLogMsg asks the root model to delete one log entry.
type DeleteLogMsg struct {
	HabitID int
	LogID   int
}

// CloseMsg asks the root model to close the editor.
type CloseMsg struct{}

type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Focus  key.Binding
	Delete key.Binding
	Close  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "влево"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "вправо"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "вниз"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "переключить"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "календарь/список"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "удалить запись"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "закрыть"),
		),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Center)

	completedStyle = lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255")).Width(4).Align(lipgloss.Center)
	missedStyle    = lipgloss.NewStyle().Background(lipgloss.Color("88")).Foreground(lipgloss.Color("255")).Width(4).Align(lipgloss.Center)
	emptyDayStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("244")).Width(4).Align(lipgloss.Center)
	cursorStyle    = lipgloss.NewStyle().Reverse(true).Bold(true).Width(4).Align(lipgloss.Center)

	listHeadStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	entryStyle      = lipgloss.NewStyle()
	entrySelStyle   = lipgloss.NewStyle().Reverse(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(1, 0)
	focusOnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	focusBlurStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type focusArea int

const (
	focusCalendar focusArea = iota
	focusList
)

// Model is the modal editor for one habit's 60-day completion history.
type Model struct {
	habit      models.Habit
	cells      []view.Cell
	recent     []models.HabitLog
	keys       KeyMap
	focus      focusArea
	cursor     int // index into cells
	listCursor int // index into recent
	errMsg     string
}

func New() Model {
	return Model{keys: DefaultKeyMap()}
}

// Open points the editor at a habit. Log data arrives via SetLogs after the
// fetch completes.
func (m *Model) Open(habit models.Habit) {
	m.habit = habit
	m.cells = nil
	m.recent = nil
	m.errMsg = ""
	m.focus = focusCalendar
	m.cursor = constants.CalendarDays - 1 // start on today
	m.listCursor = 0
}

// SetLogs installs a fetched log history: the calendar grid plus the most
// recent entries list.
func (m *Model) SetLogs(cells []view.Cell, logs []models.HabitLog) {
	m.errMsg = ""
	m.cells = cells
	if len(logs) > constants.RecentLogLimit {
		logs = logs[:constants.RecentLogLimit]
	}
	m.recent = logs
	if m.cursor >= len(cells) {
		m.cursor = len(cells) - 1
	}
	if m.listCursor >= len(logs) {
		m.listCursor = 0
	}
}

func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

func (m Model) Habit() models.Habit {
	return m.habit
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Close):
		return m, func() tea.Msg { return CloseMsg{} }
	case key.Matches(keyMsg, m.keys.Focus):
		if m.focus == focusCalendar {
			m.focus = focusList
		} else {
			m.focus = focusCalendar
		}
		return m, nil
	}

	if m.focus == focusCalendar {
		return m.updateCalendar(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m Model) updateCalendar(msg tea.KeyMsg) (Model, tea.Cmd) {
	if len(m.cells) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.cells)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor >= gridColumns {
			m.cursor -= gridColumns
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+gridColumns < len(m.cells) {
			m.cursor += gridColumns
		}
	case key.Matches(msg, m.keys.Toggle):
		cell := m.cells[m.cursor]
		habitID := m.habit.ID
		completed := view.NextCompleted(cell.State)
		return m, func() tea.Msg {
			return ToggleDayMsg{HabitID: habitID, Date: cell.Date, Completed: completed}
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	if len(m.recent) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.listCursor < len(m.recent)-1 {
			m.listCursor++
		}
	case key.Matches(msg, m.keys.Delete):
		entry := m.recent[m.listCursor]
		habitID := m.habit.ID
		return m, func() tea.Msg {
			return DeleteLogMsg{HabitID: habitID, LogID: entry.ID}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("📅 %s — Логи", m.habit.Name)) + "\n")

	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg))
		return b.String()
	}

	b.WriteString(m.viewCalendar())
	b.WriteString(m.viewRecent())

	hint := "tab: календарь/список · enter: переключить день · x: удалить запись · esc: закрыть"
	b.WriteString("\n" + mutedStyle.Render(hint))
	return b.String()
}

func (m Model) viewCalendar() string {
	var b strings.Builder

	focusMark := focusBlurStyle
	if m.focus == focusCalendar {
		focusMark = focusOnStyle
	}
	b.WriteString(focusMark.Render("Календарь (60 дней)") + "\n")

	var header strings.Builder
	for _, h := range view.DayHeaders() {
		header.WriteString(headerStyle.Render(h))
	}
	b.WriteString(header.String() + "\n")

	for i, cell := range m.cells {
		style := emptyDayStyle
		switch cell.State {
		case view.DayCompleted:
			style = completedStyle
		case view.DayMissed:
			style = missedStyle
		}
		if m.focus == focusCalendar && i == m.cursor {
			style = cursorStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%d", cell.DayOfMon)))
		if (i+1)%gridColumns == 0 {
			b.WriteString("\n")
		}
	}
	if len(m.cells)%gridColumns != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewRecent() string {
	var b strings.Builder

	focusMark := focusBlurStyle
	if m.focus == focusList {
		focusMark = focusOnStyle
	}
	b.WriteString(listHeadStyle.Render(focusMark.Render("Последние записи")) + "\n")

	if len(m.recent) == 0 {
		b.WriteString(mutedStyle.Render("Нет записей") + "\n")
		return b.String()
	}

	for i, l := range m.recent {
		status := "❌"
		if l.Completed {
			status = "✅"
		}
		line := fmt.Sprintf("%s  %s  %s", l.Date, status, view.OrDash(l.Note))
		style := entryStyle
		if m.focus == focusList && i == m.listCursor {
			style = entrySelStyle
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
