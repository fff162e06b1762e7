package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ecotrack/ecotrack-cli/internal/api"
	"github.com/ecotrack/ecotrack-cli/internal/cli"
	"github.com/ecotrack/ecotrack-cli/internal/config"
	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/errors"
	"github.com/ecotrack/ecotrack-cli/internal/logger"
	"github.com/ecotrack/ecotrack-cli/internal/notify"
	"github.com/ecotrack/ecotrack-cli/internal/store"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Configuration directory." default:"~/.config/ecotrack"`
	Debug     bool   `help:"Enable debug logging."`

	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Dashboard    cli.DashboardCmd    `cmd:"" help:"Print the sustainability dashboard."`
	Habit        cli.HabitCmd        `cmd:"" help:"Manage tracked habits."`
	Checkin      cli.CheckinCmd      `cmd:"" help:"Complete the daily check-in questionnaire."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show the achievement gallery."`
	Suggestions  cli.SuggestionsCmd  `cmd:"" help:"Show improvement suggestions."`
	Auth         cli.AuthCmd         `cmd:"" help:"Manage stored session credentials."`
	Doctor       cli.DoctorCmd       `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track sustainable habits from the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := config.ExpandPath(CLI.ConfigDir)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatal(err)
	}

	cfg, err := config.Load(configDir, CLI.Debug)
	if err != nil {
		errors.Fatal(err)
	}

	client := api.NewClient(cfg.ServerURL, cfg.Session, cfg.CSRFToken)
	cache := store.NewCache(filepath.Join(configDir, "cache.db"))
	if err := cache.Open(); err != nil {
		errors.Fatal(err)
	}
	defer cache.Close()

	appCtx := &cli.Context{
		Config:   cfg,
		Store:    store.New(client, cache),
		Notifier: notify.Detect(),
	}

	if err := ctx.Run(appCtx); err != nil {
		cache.Close()
		errors.Fatal(err)
	}
}
