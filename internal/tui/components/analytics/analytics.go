package analytics

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkuznetsova/habitadm/internal/models"
	"github.com/mkuznetsova/habitadm/internal/view"
)

const barWidth = 30

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 2).
			Width(22).
			Align(lipgloss.Center)

	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1).MarginBottom(1)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	trackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(1, 0)
)

// Model renders the aggregate analytics snapshot: fixed-format stat cards
// plus the category ranking chart.
type Model struct {
	data   models.Analytics
	loaded bool
	errMsg string
	width  int
}

func New() Model {
	return Model{width: 80}
}

func (m *Model) SetData(data models.Analytics) {
	m.data = data
	m.loaded = true
	m.errMsg = ""
}

func (m *Model) SetError(msg string) {
	m.errMsg = msg
	m.loaded = false
}

func (m *Model) SetSize(width, _ int) {
	m.width = width
}

func (m Model) View() string {
	if m.errMsg != "" {
		return errStyle.Render(m.errMsg)
	}
	if !m.loaded {
		return ""
	}

	d := m.data
	cards := []string{
		statCard("👥", fmt.Sprintf("%d", d.TotalUsers), "Всего пользователей"),
		statCard("✅", fmt.Sprintf("%d", d.ActiveUsers), "Активных"),
		statCard("🆕", fmt.Sprintf("%d", d.NewUsers7d), "Новых за 7 дней"),
		statCard("🎯", fmt.Sprintf("%d", d.TotalHabits), "Всего привычек"),
		statCard("📈", fmt.Sprintf("%d", d.ActiveHabits), "Активных привычек"),
		statCard("🆕", fmt.Sprintf("%d", d.NewHabits7d), "Новых привычек / 7д"),
		statCard("📝", fmt.Sprintf("%d", d.TotalLogs), "Всего записей"),
		statCard("🏆", fmt.Sprintf("%.1f%%", d.CompletionRate), "Выполнение"),
	}

	perRow := m.width / 24
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, rows...)
	out += "\n" + titleStyle.Render("Популярные категории")
	out += "\n" + m.viewCategories()
	return out
}

func statCard(icon, value, label string) string {
	return cardStyle.Render(icon + "\n" + valueStyle.Render(value) + "\n" + labelStyle.Render(label))
}

func (m Model) viewCategories() string {
	bars := view.ScaleBars(m.data.TopCategories)
	if bars == nil {
		return emptyStyle.Render("Нет данных")
	}

	var b strings.Builder
	for _, bar := range bars {
		filled := int(bar.Percent / 100 * barWidth)
		if filled < 1 {
			filled = 1
		}
		b.WriteString(fmt.Sprintf(
			"%-22s %s%s %d\n",
			bar.Label,
			barStyle.Render(strings.Repeat("█", filled)),
			trackStyle.Render(strings.Repeat("░", barWidth-filled)),
			bar.Count,
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
