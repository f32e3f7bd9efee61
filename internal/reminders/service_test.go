package reminders

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/notify"
	"github.com/akozyreva/medcab/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewProvider(filepath.Join(t.TempDir(), "store.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	return store
}

// failAfterScheduler delegates to the real scheduler but fails after a set
// number of successful registrations.
type failAfterScheduler struct {
	notify.Scheduler
	remaining int
}

func (f *failAfterScheduler) Schedule(tr models.Trigger) (string, error) {
	if f.remaining <= 0 {
		return "", fmt.Errorf("scheduler unavailable")
	}
	f.remaining--
	return f.Scheduler.Schedule(tr)
}

func TestCreateWeeklyReminder(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, notify.NewAgentScheduler(store))

	created, err := svc.Create(models.Reminder{
		MedicineName: "Ибупрофен",
		Dosage:       "1 таблетка",
		Time:         "09:00",
		Days:         []time.Weekday{time.Monday, time.Wednesday},
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() should assign an id")
	}
	// One trigger per selected weekday
	if len(created.TriggerIDs) != 2 {
		t.Fatalf("expected 2 trigger ids, got %d", len(created.TriggerIDs))
	}

	triggers, err := store.GetAllTriggers()
	if err != nil {
		t.Fatalf("GetAllTriggers() failed: %v", err)
	}
	if len(triggers) != 2 {
		t.Fatalf("expected 2 stored triggers, got %d", len(triggers))
	}
	for _, tr := range triggers {
		if tr.OwnerID != created.ID || tr.OwnerType != "reminder" {
			t.Errorf("trigger not owned by reminder: %+v", tr)
		}
		if tr.Kind != models.TriggerWeekly || tr.Time != "09:00" {
			t.Errorf("unexpected trigger shape: %+v", tr)
		}
		if tr.Title != "Напоминание о приёме" {
			t.Errorf("unexpected trigger title %q", tr.Title)
		}
	}

	stored, err := store.GetReminder(created.ID)
	if err != nil {
		t.Fatalf("reminder not persisted: %v", err)
	}
	if len(stored.TriggerIDs) != 2 {
		t.Errorf("persisted reminder should carry both trigger ids, got %v", stored.TriggerIDs)
	}
}

func TestCreateOneShotReminder(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, notify.NewAgentScheduler(store))

	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	created, err := svc.Create(models.Reminder{
		MedicineName: "Антибиотик",
		Dosage:       "1 капсула",
		Time:         "20:00",
		Date:         date,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if len(created.TriggerIDs) != 1 {
		t.Fatalf("expected 1 trigger id, got %d", len(created.TriggerIDs))
	}

	tr, err := store.GetTrigger(created.TriggerIDs[0])
	if err != nil {
		t.Fatalf("GetTrigger() failed: %v", err)
	}
	if tr.Kind != models.TriggerOneShot {
		t.Errorf("expected one-shot trigger, got %q", tr.Kind)
	}
	if tr.FireAt.Format("2006-01-02 15:04") != date+" 20:00" {
		t.Errorf("FireAt = %v, want %s 20:00", tr.FireAt, date)
	}
}

func TestCreateRollsBackOnScheduleFailure(t *testing.T) {
	store := newTestStore(t)
	// First registration succeeds, second fails
	sched := &failAfterScheduler{Scheduler: notify.NewAgentScheduler(store), remaining: 1}
	svc := NewService(store, sched)

	_, err := svc.Create(models.Reminder{
		MedicineName: "Ибупрофен",
		Dosage:       "1 таблетка",
		Time:         "09:00",
		Days:         []time.Weekday{time.Monday, time.Wednesday},
	})
	if err == nil {
		t.Fatal("expected Create() to fail")
	}

	// Nothing may survive a partial registration
	triggers, _ := store.GetAllTriggers()
	if len(triggers) != 0 {
		t.Errorf("expected rollback to remove registered triggers, got %v", triggers)
	}
	reminders, _ := store.GetAllReminders()
	if len(reminders) != 0 {
		t.Errorf("expected no reminder to be stored, got %v", reminders)
	}
}

func TestCreateRejectsInvalidReminder(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, notify.NewAgentScheduler(store))

	_, err := svc.Create(models.Reminder{MedicineName: "X", Dosage: "1", Time: "09:00"})
	if err == nil {
		t.Error("expected validation error for reminder without schedule")
	}
}

func TestCancelRemovesEverything(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, notify.NewAgentScheduler(store))

	created, err := svc.Create(models.Reminder{
		MedicineName: "Ибупрофен",
		Dosage:       "1 таблетка",
		Time:         "09:00",
		Days:         []time.Weekday{time.Monday},
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	// A delivered notification referencing the reminder
	if err := store.AddNotificationLog(models.NotificationLog{
		ID: "l1", Title: "X", Timestamp: time.Now(), Type: "dose", ReminderID: created.ID,
	}); err != nil {
		t.Fatalf("AddNotificationLog() failed: %v", err)
	}
	// An unrelated entry that must survive
	if err := store.AddNotificationLog(models.NotificationLog{
		ID: "l2", Title: "Y", Timestamp: time.Now(), Type: "system",
	}); err != nil {
		t.Fatalf("AddNotificationLog() failed: %v", err)
	}

	if err := svc.Cancel(created.ID); err != nil {
		t.Fatalf("Cancel() failed: %v", err)
	}

	if _, err := store.GetReminder(created.ID); err == nil {
		t.Error("reminder should be gone")
	}
	triggers, _ := store.GetAllTriggers()
	if len(triggers) != 0 {
		t.Errorf("triggers should be gone, got %v", triggers)
	}
	logs, _ := store.GetAllNotificationLogs()
	if len(logs) != 1 || logs[0].ID != "l2" {
		t.Errorf("only the unrelated log should survive, got %v", logs)
	}

	// Cancelling again is a no-op
	if err := svc.Cancel(created.ID); err != nil {
		t.Errorf("second Cancel() should be a no-op, got: %v", err)
	}
}

func TestDueOn(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, notify.NewAgentScheduler(store))

	if _, err := svc.Create(models.Reminder{
		MedicineName: "Ибупрофен",
		Dosage:       "1 таблетка",
		Time:         "09:00",
		Days:         []time.Weekday{time.Monday},
	}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	// 2025-03-10 is a Monday
	monday := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	due, err := svc.DueOn(monday)
	if err != nil {
		t.Fatalf("DueOn() failed: %v", err)
	}
	if len(due) != 1 {
		t.Errorf("expected 1 reminder due on Monday, got %d", len(due))
	}

	due, err = svc.DueOn(monday.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("DueOn() failed: %v", err)
	}
	if len(due) != 0 {
		t.Errorf("expected nothing due on Tuesday, got %d", len(due))
	}
}
