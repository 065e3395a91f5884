package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mkuznetsova/habitadm/internal/logger"
)

type LoginCmd struct {
	Username string `short:"u" help:"Admin username. Prompted when omitted."`
	Password string `short:"p" help:"Admin password. Prompted when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if c.Username == "" || c.Password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Логин").Value(&c.Username),
			huh.NewInput().Title("Пароль").EchoMode(huh.EchoModePassword).Value(&c.Password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	me, err := ctx.Session.Login(context.Background(), c.Username, c.Password)
	if err != nil {
		return err
	}
	logger.Info("Logged in", "username", me.Username)
	fmt.Printf("✅ Вход выполнен: %s\n", me.Username)
	return nil
}
