package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mkuznetsova/habitadm/internal/cli"
	"github.com/mkuznetsova/habitadm/internal/constants"
	"github.com/mkuznetsova/habitadm/internal/errors"
	"github.com/mkuznetsova/habitadm/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Base URL of the habit service API." env:"HABITADM_SERVER" default:"${server}"`
	Debug   bool   `help:"Enable debug logging." env:"HABITADM_DEBUG"`

	Tui       cli.TuiCmd       `cmd:"" help:"Launch the admin dashboard." default:"1"`
	Login     cli.LoginCmd     `cmd:"" help:"Log in and store the session token."`
	Logout    cli.LogoutCmd    `cmd:"" help:"Drop the stored session token."`
	Whoami    cli.WhoamiCmd    `cmd:"" help:"Show the logged-in operator."`
	Analytics cli.AnalyticsCmd `cmd:"" help:"Print the platform analytics snapshot."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Admin console for the habit tracking service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"server":  constants.DefaultServerURL,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️ Logger init failed: %v\n", err)
	}

	appCtx := cli.NewContext(strings.TrimRight(CLI.Server, "/"))
	errors.Fatal(ctx.Run(appCtx))
}

func configDir() string {
	dir := constants.DefaultConfigDir
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[2:])
		}
	}
	return dir
}
