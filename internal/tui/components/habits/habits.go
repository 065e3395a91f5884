package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
	"github.com/mkuznetsova/habitadm/internal/view"
)

// SearchChangedMsg fires on every edit of the search field; the root model
// debounces the actual re-query.
type SearchChangedMsg struct{}

type PrevPageMsg struct{}

type NextPageMsg struct{}

// OpenLogsMsg asks the root model to open the log editor for a habit.
type OpenLogsMsg struct {
	Habit models.Habit
}

// GenerateMsg asks the root model to prompt for synthetic log generation.
type GenerateMsg struct {
	Habit models.Habit
}

// ToggleActiveMsg flips a habit's active flag.
type ToggleActiveMsg struct {
	Habit models.Habit
}

type DeleteMsg struct {
	Habit models.Habit
}

type KeyMap struct {
	Search       key.Binding
	OpenLogs     key.Binding
	Generate     key.Binding
	ToggleActive key.Binding
	Delete       key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "поиск"),
		),
		OpenLogs: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "логи"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "генерация"),
		),
		ToggleActive: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "вкл/выкл"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "удалить"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "назад"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "вперёд"),
		),
	}
}

var (
	searchStyle = lipgloss.NewStyle().MarginBottom(1)
	pagerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(2, 0)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(1, 0)
)

type Model struct {
	table  table.Model
	search textinput.Model
	keys   KeyMap
	items  []models.Habit
	pag    view.Pagination
	errMsg string
}

func New() Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Название", Width: 20},
		{Title: "Владелец", Width: 14},
		{Title: "Категория", Width: 18},
		{Title: "Кулдаун", Width: 8},
		{Title: "Время", Width: 12},
		{Title: "Записей", Width: 8},
		{Title: "Вып.", Width: 6},
		{Title: "Активна", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(constants.PageSize),
	)

	s := textinput.New()
	s.Placeholder = "Поиск по названию"
	s.Prompt = "🔍 "
	s.CharLimit = 64

	return Model{
		table:  t,
		search: s,
		keys:   DefaultKeyMap(),
	}
}

// SetData replaces the table contents with one fetched page.
func (m *Model) SetData(page models.HabitPage, pageIdx int) {
	m.errMsg = ""
	m.items = page.Items
	m.pag = view.Paginate(page.Total, pageIdx, constants.PageSize)

	rows := make([]table.Row, len(page.Items))
	for i, h := range page.Items {
		active := "Да"
		if !h.IsActive {
			active = "Нет"
		}
		timeCol := view.OrDash(h.TargetTime)
		if h.ReminderTime != "" {
			timeCol += " 🔔" + h.ReminderTime
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", h.ID),
			h.Name,
			h.Username,
			constants.CategoryLabel(h.Category),
			fmt.Sprintf("%dд", h.CooldownDays),
			timeCol,
			fmt.Sprintf("%d", h.LogsCount),
			fmt.Sprintf("%.0f%%", h.CompletionRate),
			active,
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// SetError replaces the table body with an error message.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
	m.items = nil
	m.table.SetRows(nil)
}

func (m Model) SearchValue() string {
	return m.search.Value()
}

func (m Model) Searching() bool {
	return m.search.Focused()
}

// Selected returns the habit under the cursor.
func (m Model) Selected() (models.Habit, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return models.Habit{}, false
	}
	return m.items[idx], true
}

func (m Model) Pagination() view.Pagination {
	return m.pag
}

func (m *Model) SetSize(width, height int) {
	m.table.SetWidth(width)
	if height > 6 {
		m.table.SetHeight(height - 6)
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.search.Focused() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.Type {
			case tea.KeyEsc, tea.KeyEnter:
				m.search.Blur()
				return m, nil
			}
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
		if m.search.Value() != before {
			cmds = append(cmds, func() tea.Msg { return SearchChangedMsg{} })
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Search):
			m.search.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.OpenLogs):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenLogsMsg{Habit: h} }
			}
		case key.Matches(msg, m.keys.Generate):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return GenerateMsg{Habit: h} }
			}
		case key.Matches(msg, m.keys.ToggleActive):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleActiveMsg{Habit: h} }
			}
		case key.Matches(msg, m.keys.Delete):
			if h, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteMsg{Habit: h} }
			}
		case key.Matches(msg, m.keys.PrevPage):
			if m.pag.HasPrev {
				return m, func() tea.Msg { return PrevPageMsg{} }
			}
		case key.Matches(msg, m.keys.NextPage):
			if m.pag.HasNext {
				return m, func() tea.Msg { return NextPageMsg{} }
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var body string
	switch {
	case m.errMsg != "":
		body = errStyle.Render(m.errMsg)
	case len(m.items) == 0:
		body = emptyStyle.Render("Привычки не найдены")
	default:
		body = m.table.View()
	}

	out := searchStyle.Render(m.search.View()) + "\n" + body
	if m.pag.Visible {
		out += "\n" + pagerStyle.Render(pagerLine(m.pag))
	}
	return out
}

func pagerLine(p view.Pagination) string {
	prev := "  "
	if p.HasPrev {
		prev = "← "
	}
	next := "  "
	if p.HasNext {
		next = " →"
	}
	return prev + p.Label + next
}
