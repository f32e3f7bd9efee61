package models

import (
	"testing"
	"time"
)

func TestReminderValidate(t *testing.T) {
	valid := Reminder{
		MedicineName: "Ибупрофен",
		Dosage:       "1 tablet",
		Time:         "09:00",
		Days:         []time.Weekday{time.Monday},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid reminder, got error: %v", err)
	}

	tests := []struct {
		name     string
		reminder Reminder
	}{
		{"empty medicine name", Reminder{Dosage: "1", Time: "09:00", Days: []time.Weekday{time.Monday}}},
		{"empty dosage", Reminder{MedicineName: "X", Time: "09:00", Days: []time.Weekday{time.Monday}}},
		{"empty time", Reminder{MedicineName: "X", Dosage: "1", Days: []time.Weekday{time.Monday}}},
		{"bad time format", Reminder{MedicineName: "X", Dosage: "1", Time: "9am", Days: []time.Weekday{time.Monday}}},
		{"no days and no date", Reminder{MedicineName: "X", Dosage: "1", Time: "09:00"}},
		{"both days and date", Reminder{MedicineName: "X", Dosage: "1", Time: "09:00", Days: []time.Weekday{time.Monday}, Date: "2026-01-01"}},
		{"bad date format", Reminder{MedicineName: "X", Dosage: "1", Time: "09:00", Date: "01.01.2026"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.reminder.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestReminderIsDueOn(t *testing.T) {
	// 2025-03-10 is a Monday
	monday := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	weekly := Reminder{Days: []time.Weekday{time.Monday, time.Wednesday}}
	if !weekly.IsDueOn(monday) {
		t.Error("weekly reminder should be due on Monday")
	}
	if weekly.IsDueOn(tuesday) {
		t.Error("weekly reminder should not be due on Tuesday")
	}

	oneShot := Reminder{Date: "2025-03-10"}
	if !oneShot.IsDueOn(monday) {
		t.Error("one-shot reminder should be due on its date")
	}
	if oneShot.IsDueOn(tuesday) {
		t.Error("one-shot reminder should not be due on another date")
	}
}

func TestReminderFormatDays(t *testing.T) {
	// Sunday must sort last (Monday-first ordering)
	r := Reminder{Days: []time.Weekday{time.Sunday, time.Wednesday, time.Monday}}
	got := r.FormatDays()
	want := "Weekly: Mon, Wed, Sun"
	if got != want {
		t.Errorf("FormatDays() = %q, want %q", got, want)
	}

	oneShot := Reminder{Date: "2026-01-15"}
	if got := oneShot.FormatDays(); got != "Once on 2026-01-15" {
		t.Errorf("FormatDays() = %q", got)
	}
}

func TestISOWeekdayRoundTrip(t *testing.T) {
	for iso := 1; iso <= 7; iso++ {
		wd := WeekdayFromISO(iso)
		if got := ISOWeekday(wd); got != iso {
			t.Errorf("ISOWeekday(WeekdayFromISO(%d)) = %d", iso, got)
		}
	}
	if ISOWeekday(time.Sunday) != 7 {
		t.Error("Sunday should map to 7")
	}
	if ISOWeekday(time.Monday) != 1 {
		t.Error("Monday should map to 1")
	}
}
