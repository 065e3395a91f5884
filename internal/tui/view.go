package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkuznetsova/habitadm/internal/constants"
)

var tabOrder = []struct {
	state constants.SessionState
	title string
}{
	{constants.StateAnalytics, "📊 Аналитика"},
	{constants.StateUsers, "👥 Пользователи"},
	{constants.StateHabits, "🎯 Привычки"},
	{constants.StateChats, "💬 Чаты"},
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateLogin:
		return m.viewLogin()
	case constants.StateConfirm:
		return m.viewConfirm()
	case constants.StateGenerateForm:
		return m.viewGenerateForm()
	case constants.StateLogEditor:
		return docStyle.Render(m.viewWithChrome(m.editorModel.View()))
	}

	var content string
	switch m.state {
	case constants.StateAnalytics:
		content = m.analyticsModel.View()
	case constants.StateUsers:
		content = m.usersModel.View()
	case constants.StateHabits:
		content = m.habitsModel.View()
	case constants.StateChats:
		content = m.chatsModel.View()
	}
	return docStyle.Render(m.viewWithChrome(content))
}

// viewWithChrome wraps tab content with the tab bar, loading indicator,
// toast and help footer.
func (m Model) viewWithChrome(content string) string {
	var b strings.Builder
	b.WriteString(m.viewTabBar())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(loadingStyle.Render(m.spinner.View() + " Загрузка..."))
		b.WriteString("\n")
	}
	b.WriteString(content)
	b.WriteString("\n")

	if m.toast != "" {
		style := toastStyle
		if m.toastIsError {
			style = toastErrStyle
		}
		b.WriteString(style.Render(m.toast))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m))
	return b.String()
}

func (m Model) viewTabBar() string {
	tabs := make([]string, 0, len(tabOrder)+1)
	for _, t := range tabOrder {
		// Keep the bar stable while a modal sits on top of a tab.
		active := m.state == t.state ||
			(m.state == constants.StateLogEditor && t.state == constants.StateHabits)
		if active {
			tabs = append(tabs, activeTabStyle.Render(t.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.title))
		}
	}
	if m.operator != "" {
		tabs = append(tabs, operatorStyle.Render("👤 "+m.operator))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(activeTabStyle.Render("🔐 " + constants.AppName))
	b.WriteString("\n\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	if m.toast != "" && m.toastIsError {
		b.WriteString("\n")
		b.WriteString(loginErrStyle.Render(m.toast))
	}
	return docStyle.Render(b.String())
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(dangerStyle.Render("⚠ " + m.confirmMessage))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s / %s",
		dangerStyle.Render("y — да"),
		inactiveTabStyle.Render("n — нет")))
	return docStyle.Render(b.String())
}

func (m Model) viewGenerateForm() string {
	var b strings.Builder
	b.WriteString(activeTabStyle.Render("⚙ Генерация логов: " + m.genHabit.Name))
	b.WriteString("\n\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	b.WriteString("\n")
	b.WriteString(inactiveTabStyle.Render("esc — отмена"))
	return docStyle.Render(b.String())
}
