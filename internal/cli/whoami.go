package cli

import (
	"context"
	"fmt"
)

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	me, ok := ctx.Session.Restore(context.Background())
	if !ok {
		return fmt.Errorf("нет активной сессии, выполните `habitadm login`")
	}
	fmt.Printf("👤 %s (id=%d, admin=%t)\n", me.Username, me.ID, me.IsAdmin)
	return nil
}
