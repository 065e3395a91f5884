package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global key bindings; per-tab actions live with their
// components.
type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Analytics key.Binding
	Users     key.Binding
	Habits    key.Binding
	Chats     key.Binding
	Refresh   key.Binding
	Logout    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "след. вкладка"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "пред. вкладка"),
		),
		Analytics: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "аналитика"),
		),
		Users: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "пользователи"),
		),
		Habits: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "привычки"),
		),
		Chats: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "чаты"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "обновить"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "выход из сессии"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "помощь"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "выход"),
		),
	}
}
