package reminders

import (
	"testing"
	"time"

	"github.com/akozyreva/medcab/internal/constants"
	"github.com/akozyreva/medcab/internal/models"
)

func TestBucket(t *testing.T) {
	// Late evening, so a 25-hour-old entry still lands on yesterday's date
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"just now", now, BucketToday},
		{"this morning", time.Date(2025, 3, 10, 0, 5, 0, 0, time.UTC), BucketToday},
		{"25 hours ago but yesterday's date", now.Add(-25 * time.Hour), BucketYesterday},
		{"yesterday start", time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), BucketYesterday},
		{"two days ago", time.Date(2025, 3, 8, 23, 59, 0, 0, time.UTC), BucketEarlier},
		{"50 hours ago", now.Add(-50 * time.Hour), BucketEarlier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bucket(tt.ts, now); got != tt.want {
				t.Errorf("Bucket(%v) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}

func TestBucketLogs(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	logs := []models.NotificationLog{
		{ID: "a", Timestamp: now.Add(-time.Hour)},
		{ID: "b", Timestamp: now.AddDate(0, 0, -1)},
		{ID: "c", Timestamp: now.AddDate(0, 0, -5)},
		{ID: "d", Timestamp: now.Add(-2 * time.Hour)},
	}

	buckets := BucketLogs(logs, now)
	if len(buckets[BucketToday]) != 2 {
		t.Errorf("expected 2 entries today, got %v", buckets[BucketToday])
	}
	if len(buckets[BucketYesterday]) != 1 || buckets[BucketYesterday][0].ID != "b" {
		t.Errorf("expected b yesterday, got %v", buckets[BucketYesterday])
	}
	if len(buckets[BucketEarlier]) != 1 || buckets[BucketEarlier][0].ID != "c" {
		t.Errorf("expected c earlier, got %v", buckets[BucketEarlier])
	}
	// Input order preserved inside a bucket
	if buckets[BucketToday][0].ID != "a" || buckets[BucketToday][1].ID != "d" {
		t.Errorf("today bucket out of order: %v", buckets[BucketToday])
	}
}

func TestLogRecorderOnDelivered(t *testing.T) {
	store := newTestStore(t)
	lr := NewLogRecorder(store)
	firedAt := time.Now().UTC().Truncate(time.Second)

	lr.OnDelivered(models.Trigger{
		Title:     "Напоминание о приёме",
		Body:      "Ибупрофен — 1 таблетка",
		OwnerID:   "rem-1",
		OwnerType: "reminder",
	}, firedAt)
	lr.OnDelivered(models.Trigger{
		Title:     "Приём у врача",
		OwnerID:   "app-1",
		OwnerType: "appointment",
	}, firedAt)

	logs, err := store.GetAllNotificationLogs()
	if err != nil {
		t.Fatalf("GetAllNotificationLogs() failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(logs))
	}

	for _, l := range logs {
		switch l.Title {
		case "Напоминание о приёме":
			if l.Type != constants.LogTypeDose {
				t.Errorf("dose delivery logged as %q", l.Type)
			}
			if l.ReminderID != "rem-1" {
				t.Errorf("dose log should back-reference the reminder, got %q", l.ReminderID)
			}
			if l.Subtitle != "Ибупрофен — 1 таблетка" {
				t.Errorf("unexpected subtitle %q", l.Subtitle)
			}
		case "Приём у врача":
			if l.Type != constants.LogTypeAppointment {
				t.Errorf("appointment delivery logged as %q", l.Type)
			}
			if l.ReminderID != "" {
				t.Errorf("appointment log should not reference a reminder, got %q", l.ReminderID)
			}
		default:
			t.Errorf("unexpected log entry %+v", l)
		}
		if l.Read {
			t.Error("new log entries must start unread")
		}
	}
}
