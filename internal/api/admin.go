package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mkuznetsova/habitadm/internal/models"
)

// EditLogRequest creates or updates a habit log for an exact calendar day.
type EditLogRequest struct {
	HabitID   int    `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Note      string `json:"note,omitempty"`
}

// GenerateLogsRequest asks the backend to seed synthetic logs for a habit.
type GenerateLogsRequest struct {
	HabitID           int `json:"habit_id"`
	Days              int `json:"days"`
	CompletionPercent int `json:"completion_percent"`
}

// EditHabitRequest lets the operator change any habit's properties. Nil
// fields are left untouched by the backend.
type EditHabitRequest struct {
	Name         *string `json:"name,omitempty"`
	CooldownDays *int    `json:"cooldown_days,omitempty"`
	TargetTime   *string `json:"target_time,omitempty"`
	ReminderTime *string `json:"reminder_time,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// Analytics fetches the platform-wide aggregate snapshot.
func (c *Client) Analytics(ctx context.Context) (models.Analytics, error) {
	var a models.Analytics
	err := c.get(ctx, "/admin/analytics", &a)
	return a, err
}

// Users fetches one page of users, optionally filtered by a free-text search
// over username and email.
func (c *Client) Users(ctx context.Context, skip, limit int, search string) (models.UserPage, error) {
	var page models.UserPage
	path := fmt.Sprintf("/admin/users?skip=%d&limit=%d&search=%s", skip, limit, url.QueryEscape(search))
	err := c.get(ctx, path, &page)
	return page, err
}

// BlockUser marks a user inactive.
func (c *Client) BlockUser(ctx context.Context, id int) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.patch(ctx, fmt.Sprintf("/admin/users/%d/block", id), nil, &res)
	return res, err
}

// UnblockUser reactivates a blocked user.
func (c *Client) UnblockUser(ctx context.Context, id int) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.patch(ctx, fmt.Sprintf("/admin/users/%d/unblock", id), nil, &res)
	return res, err
}

// ToggleAdmin flips a user's admin privilege and returns the server's
// confirmation message.
func (c *Client) ToggleAdmin(ctx context.Context, id int) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.patch(ctx, fmt.Sprintf("/admin/users/%d/toggle-admin", id), nil, &res)
	return res, err
}

// DeleteUser removes a user and all their data.
func (c *Client) DeleteUser(ctx context.Context, id int) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.delete(ctx, fmt.Sprintf("/admin/users/%d", id), &res)
	return res, err
}

// Habits fetches one page of habits across the platform.
func (c *Client) Habits(ctx context.Context, skip, limit int, search string) (models.HabitPage, error) {
	var page models.HabitPage
	path := fmt.Sprintf("/admin/habits?skip=%d&limit=%d&search=%s", skip, limit, url.QueryEscape(search))
	err := c.get(ctx, path, &page)
	return page, err
}

// EditHabit updates a habit's properties.
func (c *Client) EditHabit(ctx context.Context, id int, req EditHabitRequest) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.patch(ctx, fmt.Sprintf("/admin/habits/%d", id), req, &res)
	return res, err
}

// DeleteHabit removes a habit.
func (c *Client) DeleteHabit(ctx context.Context, id int) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.delete(ctx, fmt.Sprintf("/admin/habits/%d", id), &res)
	return res, err
}

// HabitLogs fetches a habit's log history for the last N days, newest first.
func (c *Client) HabitLogs(ctx context.Context, habitID, days int) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	err := c.get(ctx, fmt.Sprintf("/admin/habits/%d/logs?days=%d", habitID, days), &logs)
	return logs, err
}

// EditLog upserts a habit log for an exact day.
func (c *Client) EditLog(ctx context.Context, req EditLogRequest) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.post(ctx, "/admin/logs/edit", req, &res)
	return res, err
}

// GenerateLogs seeds synthetic logs for a habit.
func (c *Client) GenerateLogs(ctx context.Context, req GenerateLogsRequest) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.post(ctx, "/admin/logs/generate", req, &res)
	return res, err
}

// DeleteLog removes a single habit log.
func (c *Client) DeleteLog(ctx context.Context, id int) (models.ActionResult, error) {
	var res models.ActionResult
	err := c.delete(ctx, fmt.Sprintf("/admin/logs/%d", id), &res)
	return res, err
}

// Chats fetches one page of chat messages across all users.
func (c *Client) Chats(ctx context.Context, skip, limit int) (models.ChatPage, error) {
	var page models.ChatPage
	err := c.get(ctx, fmt.Sprintf("/admin/chats?skip=%d&limit=%d", skip, limit), &page)
	return page, err
}
