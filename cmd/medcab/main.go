package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/akozyreva/medcab/internal/cli"
	"github.com/akozyreva/medcab/internal/config"
	"github.com/akozyreva/medcab/internal/constants"
	"github.com/akozyreva/medcab/internal/errors"
	"github.com/akozyreva/medcab/internal/logger"
	"github.com/akozyreva/medcab/internal/notify"
	"github.com/akozyreva/medcab/internal/reminders"
	"github.com/akozyreva/medcab/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .json extension selects the JSON backend, anything else SQLite." default:"~/.config/medcab/medcab.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init          cli.InitCmd          `cmd:"" help:"Initialize medcab storage."`
	Doctor        cli.DoctorCmd        `cmd:"" help:"Run health checks and diagnostics."`
	Tui           cli.TuiCmd           `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Medicine      cli.MedicineCmd      `cmd:"" help:"Manage the medicine cabinet."`
	Category      cli.CategoryCmd      `cmd:"" help:"Manage medicine categories."`
	Reminder      cli.ReminderCmd      `cmd:"" help:"Manage dose reminders."`
	Notifications cli.NotificationsCmd `cmd:"" help:"Browse notification history."`
	Appointment   cli.AppointmentCmd   `cmd:"" help:"Manage doctor appointments."`
	Remind        struct {
		Appointment cli.RemindAppointmentCmd `cmd:"" help:"Schedule a one-time appointment reminder."`
	} `cmd:"" help:"Schedule extra reminders."`
	Profile  cli.ProfileCmd  `cmd:"" help:"Manage the user profile."`
	Scan     cli.ScanCmd     `cmd:"" help:"Recognize medicines on a receipt photo."`
	Pharmacy cli.PharmacyCmd `cmd:"" help:"Find pharmacies near a location."`
	Token    struct {
		Set    cli.TokenSetCmd    `cmd:"" help:"Store the receipt recognition API token."`
		Get    cli.TokenGetCmd    `cmd:"" help:"Show whether a token is stored."`
		Delete cli.TokenDeleteCmd `cmd:"" help:"Delete the stored token."`
	} `cmd:"" help:"Manage the receipt recognition API token."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Notify cli.NotifyCmd `cmd:"" hidden:"" help:"Deliver due notifications (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Home medicine cabinet: inventory, dose reminders and doctor appointments"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}

	store := storage.NewProvider(configPath)
	scheduler := notify.NewAgentScheduler(store)

	appCtx := &cli.Context{
		Store:     store,
		Scheduler: scheduler,
		Reminders: reminders.NewService(store, scheduler),
		Config:    cfg,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
