package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// Category is one of the platform's fixed habit classification labels
type Category string

// ConfirmationMsg is a message to trigger a y/n confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName           = "habitadm"
	DefaultKeyringKey = "admin-token"
	DefaultConfigDir  = "~/.config/habitadm"
	DefaultServerURL  = "http://localhost:8000/api"
	Version           = "v0.3.0"

	// DateFormat is the calendar-day format exchanged with the backend (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayDateFormat and DisplayDateTimeFormat are for ru-RU display only
	DisplayDateFormat     = "02.01.2006"
	DisplayDateTimeFormat = "02.01.2006 15:04"

	// PageSize is the fixed page size for all paginated views
	PageSize = 20

	// CalendarDays is the log-history window shown in the log editor
	CalendarDays = 60

	// RecentLogLimit caps the log list under the calendar
	RecentLogLimit = 30

	// SearchDebounce is the idle delay before a search re-query fires
	SearchDebounce = 400 * time.Millisecond

	// ToastDuration is how long a transient notification stays visible
	ToastDuration = 3 * time.Second

	// Habit categories (fixed set of 10)
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryNutrition    Category = "nutrition"
	CategoryMindfulness  Category = "mindfulness"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
	CategorySocial       Category = "social"
	CategorySleep        Category = "sleep"
	CategoryFinance      Category = "finance"
	CategoryOther        Category = "other"
)

// CategoryLabels maps category values to their display labels
var CategoryLabels = map[Category]string{
	CategoryHealth:       "❤️ Здоровье",
	CategoryFitness:      "💪 Фитнес",
	CategoryNutrition:    "🥗 Питание",
	CategoryMindfulness:  "🧘 Осознанность",
	CategoryProductivity: "⚡ Продуктивность",
	CategoryLearning:     "📚 Обучение",
	CategorySocial:       "🤝 Общение",
	CategorySleep:        "😴 Сон",
	CategoryFinance:      "💰 Финансы",
	CategoryOther:        "📦 Другое",
}

// CategoryLabel returns the display label for a category, falling back to
// the raw value for categories the client does not know about.
func CategoryLabel(c Category) string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}

const (
	StateLogin SessionState = iota
	StateAnalytics
	StateUsers
	StateHabits
	StateChats
	StateLogEditor
	StateConfirm
	StateGenerateForm
)
