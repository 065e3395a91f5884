package chats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/models"
	"github.com/mkuznetsova/habitadm/internal/view"
)

type PrevPageMsg struct{}

type NextPageMsg struct{}

type KeyMap struct {
	PrevPage key.Binding
	NextPage key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
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
	userMsgStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("39")).
			PaddingLeft(1).
			MarginBottom(1)

	assistantMsgStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("135")).
				PaddingLeft(1).
				MarginBottom(1)

	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pagerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(2, 0)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(1, 0)
)

// Model is the read-only chat transcript view.
type Model struct {
	vp     viewport.Model
	keys   KeyMap
	items  []models.ChatMessage
	pag    view.Pagination
	errMsg string
}

func New() Model {
	return Model{
		vp:   viewport.New(80, constants.PageSize),
		keys: DefaultKeyMap(),
	}
}

// SetData replaces the transcript with one fetched page.
func (m *Model) SetData(page models.ChatPage, pageIdx int) {
	m.errMsg = ""
	m.items = page.Items
	m.pag = view.Paginate(page.Total, pageIdx, constants.PageSize)
	m.vp.SetContent(m.renderMessages())
	m.vp.GotoTop()
}

// SetError replaces the transcript with an error message.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
	m.items = nil
	m.vp.SetContent("")
}

func (m Model) Pagination() view.Pagination {
	return m.pag
}

func (m *Model) SetSize(width, height int) {
	m.vp.Width = width
	if height > 4 {
		m.vp.Height = height - 4
	}
	m.vp.SetContent(m.renderMessages())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
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
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) renderMessages() string {
	var b strings.Builder
	width := m.vp.Width - 4
	if width < 20 {
		width = 20
	}
	for _, msg := range m.items {
		meta := metaStyle.Render(fmt.Sprintf("%s (%s)  %s", msg.Username, msg.Role, view.FormatDateTime(msg.Timestamp)))
		style := assistantMsgStyle
		if msg.Role == "user" {
			style = userMsgStyle
		}
		b.WriteString(style.Width(width).Render(meta+"\n"+msg.Content) + "\n")
	}
	return b.String()
}

func (m Model) View() string {
	var body string
	switch {
	case m.errMsg != "":
		body = errStyle.Render(m.errMsg)
	case len(m.items) == 0:
		body = emptyStyle.Render("Сообщений нет")
	default:
		body = m.vp.View()
	}

	if m.pag.Visible {
		body += "\n" + pagerStyle.Render(pagerLine(m.pag))
	}
	return body
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
