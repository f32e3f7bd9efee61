package cli

import (
	"fmt"
	"time"

	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/notify"
	"github.com/akozyreva/medcab/internal/reminders"
)

// NotifyCmd sweeps the registered triggers and delivers whatever is due. It
// is run periodically by the tray agent (or cron), not by hand.
type NotifyCmd struct {
	DryRun bool `help:"Print due notifications to stdout instead of sending them."`
}

type stdoutSender struct{}

func (stdoutSender) Notify(title, subtitle string) error {
	if subtitle != "" {
		fmt.Printf("[DryRun] %s: %s\n", title, subtitle)
	} else {
		fmt.Printf("[DryRun] %s\n", title)
	}
	return nil
}

func (c *NotifyCmd) Run(ctx *Context) error {
	var sender notify.Sender = notify.NewNotifier()
	if c.DryRun {
		sender = stdoutSender{}
	}

	dispatcher := notify.NewDispatcher(ctx.Store, sender)
	dispatcher.Subscribe(reminders.NewLogRecorder(ctx.Store))

	delivered, err := dispatcher.Sweep()
	if err != nil {
		return err
	}

	if c.DryRun {
		fmt.Printf("Delivered %d notification(s)\n", delivered)
	}
	return nil
}

// RemindAppointmentCmd registers a one-time trigger for an appointment.
type RemindAppointmentCmd struct {
	ID     string `arg:"" help:"Appointment id."`
	Before string `help:"Lead time before the appointment (e.g. 1h, 30m)." default:"1h"`
}

func (c *RemindAppointmentCmd) Run(ctx *Context) error {
	a, err := ctx.Store.GetAppointment(c.ID)
	if err != nil {
		return err
	}

	lead, err := time.ParseDuration(c.Before)
	if err != nil || lead < 0 {
		return fmt.Errorf("invalid lead time: %s", c.Before)
	}

	at, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, time.Now().Location())
	if err != nil {
		return err
	}

	id, err := ctx.Scheduler.Schedule(models.Trigger{
		Title:     "Приём у врача",
		Body:      fmt.Sprintf("%s (%s) в %s", a.Doctor, a.Specialty, a.Time),
		Kind:      models.TriggerOneShot,
		FireAt:    at.Add(-lead),
		OwnerID:   a.ID,
		OwnerType: "appointment",
	})
	if err != nil {
		return err
	}

	fmt.Printf("Scheduled appointment reminder (trigger %s)\n", id)
	return nil
}
