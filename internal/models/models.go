package models

import "github.com/mkuznetsova/habitadm/internal/constants"

// Identity is the /auth/me record for the logged-in operator.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}

// User is a platform account as the admin API reports it.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Timezone    string `json:"timezone"`
	IsActive    bool   `json:"is_active"`
	IsAdmin     bool   `json:"is_admin"`
	CreatedAt   string `json:"created_at"`
	HabitsCount int    `json:"habits_count"`
}

// Habit is a habit record joined with its owner and log stats.
type Habit struct {
	ID             int                `json:"id"`
	UserID         int                `json:"user_id"`
	Username       string             `json:"username"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Category       constants.Category `json:"category"`
	Frequency      string             `json:"frequency"`
	CooldownDays   int                `json:"cooldown_days"`
	TargetTime     string             `json:"target_time"`
	ReminderTime   string             `json:"reminder_time"`
	IsActive       bool               `json:"is_active"`
	CreatedAt      string             `json:"created_at"`
	LogsCount      int                `json:"logs_count"`
	CompletionRate float64            `json:"completion_rate"`
}

// HabitLog is a per-day completion record. Date is a YYYY-MM-DD string.
type HabitLog struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Completed   bool   `json:"completed"`
	Note        string `json:"note"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// ChatMessage is one entry of a user/assistant transcript.
type ChatMessage struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// CategoryCount is one entry of the analytics category ranking.
type CategoryCount struct {
	Category constants.Category `json:"category"`
	Count    int                `json:"count"`
}

// Analytics is the platform-wide aggregate snapshot.
type Analytics struct {
	TotalUsers     int             `json:"total_users"`
	ActiveUsers    int             `json:"active_users"`
	NewUsers7d     int             `json:"new_users_7d"`
	TotalHabits    int             `json:"total_habits"`
	ActiveHabits   int             `json:"active_habits"`
	NewHabits7d    int             `json:"new_habits_7d"`
	TotalLogs      int             `json:"total_logs"`
	CompletionRate float64         `json:"completion_rate"`
	TopCategories  []CategoryCount `json:"top_categories"`
}

// UserPage is a paginated slice of users with the server-reported total.
type UserPage struct {
	Items []User `json:"items"`
	Total int    `json:"total"`
}

// HabitPage is a paginated slice of habits.
type HabitPage struct {
	Items []Habit `json:"items"`
	Total int     `json:"total"`
}

// ChatPage is a paginated slice of chat messages.
type ChatPage struct {
	Items []ChatMessage `json:"items"`
	Total int           `json:"total"`
}

// ActionResult is the {message} envelope returned by mutating admin calls.
type ActionResult struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}
