package users

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

type BlockMsg struct {
	User models.User
}

type UnblockMsg struct {
	User models.User
}

type ToggleAdminMsg struct {
	User models.User
}

type DeleteMsg struct {
	User models.User
}

type KeyMap struct {
	Search      key.Binding
	Block       key.Binding
	Unblock     key.Binding
	ToggleAdmin key.Binding
	Delete      key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "поиск"),
		),
		Block: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "блокировать"),
		),
		Unblock: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "разблокировать"),
		),
		ToggleAdmin: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "админ/юзер"),
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
	items  []models.User
	pag    view.Pagination
	errMsg string
}

func New() Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Логин", Width: 16},
		{Title: "Email", Width: 24},
		{Title: "Привычки", Width: 9},
		{Title: "Статус", Width: 13},
		{Title: "Роль", Width: 6},
		{Title: "Создан", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(constants.PageSize),
	)

	s := textinput.New()
	s.Placeholder = "Поиск по логину или email"
	s.Prompt = "🔍 "
	s.CharLimit = 64

	return Model{
		table:  t,
		search: s,
		keys:   DefaultKeyMap(),
	}
}

// SetData replaces the table contents with one fetched page.
func (m *Model) SetData(page models.UserPage, pageIdx int) {
	m.errMsg = ""
	m.items = page.Items
	m.pag = view.Paginate(page.Total, pageIdx, constants.PageSize)

	rows := make([]table.Row, len(page.Items))
	for i, u := range page.Items {
		status := "Активен"
		if !u.IsActive {
			status = "Заблокирован"
		}
		role := "Юзер"
		if u.IsAdmin {
			role = "Админ"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", u.ID),
			u.Username,
			u.Email,
			fmt.Sprintf("%d", u.HabitsCount),
			status,
			role,
			view.FormatDate(u.CreatedAt),
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

// Selected returns the user under the cursor.
func (m Model) Selected() (models.User, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return models.User{}, false
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
		case key.Matches(msg, m.keys.Block):
			if u, ok := m.Selected(); ok && u.IsActive {
				return m, func() tea.Msg { return BlockMsg{User: u} }
			}
		case key.Matches(msg, m.keys.Unblock):
			if u, ok := m.Selected(); ok && !u.IsActive {
				return m, func() tea.Msg { return UnblockMsg{User: u} }
			}
		case key.Matches(msg, m.keys.ToggleAdmin):
			if u, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleAdminMsg{User: u} }
			}
		case key.Matches(msg, m.keys.Delete):
			if u, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteMsg{User: u} }
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
		body = emptyStyle.Render("Пользователи не найдены")
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
