package cli

import (
	"context"
	"fmt"

	"github.com/mkuznetsova/habitadm/internal/view"
)

// AnalyticsCmd prints the platform snapshot without entering the TUI,
// which is handy for scripting and quick checks over SSH.
type AnalyticsCmd struct{}

func (c *AnalyticsCmd) Run(ctx *Context) error {
	if _, ok := ctx.Session.Restore(context.Background()); !ok {
		return fmt.Errorf("нет активной сессии, выполните `habitadm login`")
	}

	data, err := ctx.Client.Analytics(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("👥 Пользователи: %d (активных %d, новых за 7 дней %d)\n",
		data.TotalUsers, data.ActiveUsers, data.NewUsers7d)
	fmt.Printf("🎯 Привычки:     %d (активных %d, новых за 7 дней %d)\n",
		data.TotalHabits, data.ActiveHabits, data.NewHabits7d)
	fmt.Printf("📝 Записи:       %d, выполнение %.1f%%\n",
		data.TotalLogs, data.CompletionRate)

	bars := view.ScaleBars(data.TopCategories)
	if len(bars) > 0 {
		fmt.Println("\n🏆 Топ категорий:")
		for _, b := range bars {
			fmt.Printf("  %-20s %4d (%.0f%%)\n", b.Label, b.Count, b.Percent)
		}
	}
	return nil
}
