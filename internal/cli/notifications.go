package cli

import (
	"fmt"
	"time"

	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/reminders"
)

type NotificationsCmd struct {
	List   NotificationsListCmd   `cmd:"" help:"Show notification history." default:"1"`
	Read   NotificationsReadCmd   `cmd:"" help:"Toggle read status of an entry."`
	Delete NotificationsDeleteCmd `cmd:"" help:"Delete a history entry."`
	Clear  NotificationsClearCmd  `cmd:"" help:"Clear the whole history."`
}

type NotificationsListCmd struct {
	Unread bool `help:"Show only unread entries."`
}

func (c *NotificationsListCmd) Run(ctx *Context) error {
	logs, err := ctx.Store.GetAllNotificationLogs()
	if err != nil {
		return err
	}

	if c.Unread {
		filtered := logs[:0]
		for _, l := range logs {
			if !l.Read {
				filtered = append(filtered, l)
			}
		}
		logs = filtered
	}

	if len(logs) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	buckets := reminders.BucketLogs(logs, time.Now())
	printBucket("Today", buckets[reminders.BucketToday])
	printBucket("Yesterday", buckets[reminders.BucketYesterday])
	printBucket("Earlier", buckets[reminders.BucketEarlier])
	return nil
}

func printBucket(label string, logs []models.NotificationLog) {
	if len(logs) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, l := range logs {
		marker := " "
		if !l.Read {
			marker = "•"
		}
		line := fmt.Sprintf("%s %s  %s", marker, l.Timestamp.Format("15:04"), l.Title)
		if l.Subtitle != "" {
			line += " — " + l.Subtitle
		}
		fmt.Printf("%s\n    id: %s\n", line, l.ID)
	}
	fmt.Println()
}

type NotificationsReadCmd struct {
	ID string `arg:"" help:"History entry id."`
}

func (c *NotificationsReadCmd) Run(ctx *Context) error {
	logs, err := ctx.Store.GetAllNotificationLogs()
	if err != nil {
		return err
	}
	for _, l := range logs {
		if l.ID == c.ID {
			if err := ctx.Store.SetNotificationLogRead(c.ID, !l.Read); err != nil {
				return err
			}
			if l.Read {
				fmt.Println("Marked as unread.")
			} else {
				fmt.Println("Marked as read.")
			}
			return nil
		}
	}
	return fmt.Errorf("notification log not found: %s", c.ID)
}

type NotificationsDeleteCmd struct {
	ID string `arg:"" help:"History entry id."`
}

func (c *NotificationsDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteNotificationLog(c.ID); err != nil {
		return err
	}
	fmt.Println("Notification deleted.")
	return nil
}

type NotificationsClearCmd struct{}

func (c *NotificationsClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.ClearNotificationLogs(); err != nil {
		return err
	}
	fmt.Println("Notification history cleared.")
	return nil
}
