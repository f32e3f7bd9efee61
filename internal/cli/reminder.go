package cli

import (
	"fmt"
	"time"

	"github.com/akozyreva/medcab/internal/constants"
	"github.com/akozyreva/medcab/internal/models"
)

type ReminderCmd struct {
	Add       ReminderAddCmd       `cmd:"" help:"Create a dose reminder."`
	List      ReminderListCmd      `cmd:"" help:"List reminders."`
	Today     ReminderTodayCmd     `cmd:"" help:"Show reminders due today."`
	Cancel    ReminderCancelCmd    `cmd:"" help:"Cancel a reminder and its notifications."`
	CancelAll ReminderCancelAllCmd `cmd:"" name:"cancel-all" help:"Cancel every reminder."`
}

type ReminderAddCmd struct {
	Medicine string `arg:"" help:"Medicine name."`
	Dosage   string `required:"" help:"Dosage to take (e.g. '1 tablet')."`
	Time     string `required:"" help:"Time of day in HH:MM format."`
	Days     string `help:"Weekdays, comma-separated (mon,wed or 1,3; Monday=1)." default:""`
	Date     string `help:"Exact date in YYYY-MM-DD for a one-time reminder." default:""`
}

func (c *ReminderAddCmd) Run(ctx *Context) error {
	r := models.Reminder{
		MedicineName: c.Medicine,
		Dosage:       c.Dosage,
		Time:         c.Time,
		Date:         c.Date,
	}

	if c.Days != "" {
		days, err := ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		r.Days = days
	}

	created, err := ctx.Reminders.Create(r)
	if err != nil {
		return err
	}

	fmt.Printf("Created reminder for %s at %s (%s)\n", created.MedicineName, created.Time, created.FormatDays())
	fmt.Printf("  id: %s\n", created.ID)
	return nil
}

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *Context) error {
	reminders, err := ctx.Reminders.List()
	if err != nil {
		return err
	}

	if len(reminders) == 0 {
		fmt.Println("No reminders found.")
		return nil
	}

	for _, r := range reminders {
		fmt.Printf("%s — %s at %s (%s)\n  id: %s\n", r.MedicineName, r.Dosage, r.Time, r.FormatDays(), r.ID)
	}
	return nil
}

type ReminderTodayCmd struct{}

func (c *ReminderTodayCmd) Run(ctx *Context) error {
	today := time.Now()
	due, err := ctx.Reminders.DueOn(today)
	if err != nil {
		return err
	}

	if len(due) == 0 {
		fmt.Println("Nothing scheduled for today.")
		return nil
	}

	fmt.Printf("Reminders for %s:\n\n", today.Format(constants.DateFormat))
	for _, r := range due {
		fmt.Printf("  %s  %s — %s\n", r.Time, r.MedicineName, r.Dosage)
	}
	return nil
}

type ReminderCancelCmd struct {
	ID string `arg:"" help:"Reminder id."`
}

func (c *ReminderCancelCmd) Run(ctx *Context) error {
	if err := ctx.Reminders.Cancel(c.ID); err != nil {
		return err
	}
	fmt.Println("Reminder cancelled.")
	return nil
}

type ReminderCancelAllCmd struct{}

func (c *ReminderCancelAllCmd) Run(ctx *Context) error {
	if err := ctx.Reminders.CancelAll(); err != nil {
		return err
	}
	fmt.Println("All reminders cancelled.")
	return nil
}
