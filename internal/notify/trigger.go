package notify

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/akozyreva/medcab/internal/models"
)

var rruleWeekdays = []rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// weeklyRule builds the recurrence rule for a weekly trigger. Dtstart is
// anchored a week in the past so the rule always has occurrences around the
// reference time.
func weeklyRule(t models.Trigger, ref time.Time) (*rrule.RRule, error) {
	clock, err := time.Parse("15:04", t.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid trigger time %q: %w", t.Time, err)
	}
	if t.Weekday < 1 || t.Weekday > 7 {
		return nil, fmt.Errorf("invalid trigger weekday %d", t.Weekday)
	}

	dtstart := time.Date(ref.Year(), ref.Month(), ref.Day(),
		clock.Hour(), clock.Minute(), 0, 0, ref.Location()).AddDate(0, 0, -7)

	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[t.Weekday-1]},
		Dtstart:   dtstart,
	})
}

// NextFire returns the next time the trigger fires after the given instant.
// A zero time means the trigger has no future occurrence.
func NextFire(t models.Trigger, after time.Time) (time.Time, error) {
	switch t.Kind {
	case models.TriggerOneShot:
		if t.FireAt.After(after) {
			return t.FireAt, nil
		}
		return time.Time{}, nil
	case models.TriggerWeekly:
		rule, err := weeklyRule(t, after)
		if err != nil {
			return time.Time{}, err
		}
		return rule.After(after, false), nil
	default:
		return time.Time{}, fmt.Errorf("unknown trigger kind %q", t.Kind)
	}
}

// DueAt returns the occurrence the trigger should deliver for at the given
// instant. An occurrence is due when it falls inside (now-grace, now] and has
// not been delivered yet.
func DueAt(t models.Trigger, now time.Time, grace time.Duration) (time.Time, bool) {
	switch t.Kind {
	case models.TriggerOneShot:
		if !t.LastFired.IsZero() {
			return time.Time{}, false
		}
		if t.FireAt.After(now) || !t.FireAt.After(now.Add(-grace)) {
			return time.Time{}, false
		}
		return t.FireAt, true
	case models.TriggerWeekly:
		rule, err := weeklyRule(t, now)
		if err != nil {
			return time.Time{}, false
		}
		last := rule.Before(now, true)
		if last.IsZero() || !last.After(now.Add(-grace)) {
			return time.Time{}, false
		}
		if !t.LastFired.Before(last) {
			return time.Time{}, false
		}
		return last, true
	default:
		return time.Time{}, false
	}
}
