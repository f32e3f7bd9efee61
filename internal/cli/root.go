package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akozyreva/medcab/internal/backup"
	"github.com/akozyreva/medcab/internal/config"
	"github.com/akozyreva/medcab/internal/logger"
	"github.com/akozyreva/medcab/internal/notify"
	"github.com/akozyreva/medcab/internal/reminders"
	"github.com/akozyreva/medcab/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Scheduler notify.Scheduler
	Reminders *reminders.Service
	Config    *config.Config
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseWeekdays parses a comma-separated list of weekdays. Numbers follow the
// ISO convention (1=Monday .. 7=Sunday); names are also accepted.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
	}

	seen := make(map[time.Weekday]bool)
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := dayMap[part]
		if !ok {
			num, err := strconv.Atoi(part)
			if err != nil || num < 1 || num > 7 {
				return nil, fmt.Errorf("invalid weekday: %s (use mon..sun or 1..7, Monday=1)", part)
			}
			if num == 7 {
				wd = time.Sunday
			} else {
				wd = time.Weekday(num)
			}
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		weekdays = append(weekdays, wd)
	}

	return weekdays, nil
}

// FormatQuantity renders a stock count with a low-stock marker.
func FormatQuantity(quantity int) string {
	if quantity == 0 {
		return "0 (out of stock)"
	}
	if quantity <= 3 {
		return fmt.Sprintf("%d (low)", quantity)
	}
	return strconv.Itoa(quantity)
}
