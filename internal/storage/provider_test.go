package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/storage"
)

// withProviders runs fn once per storage backend against a fresh store.
func withProviders(t *testing.T, fn func(t *testing.T, store storage.Provider)) {
	t.Helper()

	backends := []struct {
		name string
		file string
	}{
		{"json", "store.json"},
		{"sqlite", "store.db"},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			store := storage.NewProvider(filepath.Join(t.TempDir(), b.file))
			if err := store.Init(); err != nil {
				t.Fatalf("Init() failed: %v", err)
			}
			t.Cleanup(func() { store.Close() })
			fn(t, store)
		})
	}
}

func testTime() time.Time {
	// RFC3339 storage keeps second precision only
	return time.Now().UTC().Truncate(time.Second)
}

func TestLoadBeforeInit(t *testing.T) {
	store := storage.NewProvider(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("Load() on an uninitialized store should fail")
	}
}

func TestMedicineCRUD(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		m := models.Medicine{
			ID:             "med-1",
			Name:           "Ибупрофен",
			Quantity:       20,
			Dosage:         "200 мг",
			ExpirationDate: "2027-01-31",
			Category:       "Обезболивающие",
			CreatedAt:      testTime(),
		}
		if err := store.AddMedicine(m); err != nil {
			t.Fatalf("AddMedicine() failed: %v", err)
		}

		got, err := store.GetMedicine("med-1")
		if err != nil {
			t.Fatalf("GetMedicine() failed: %v", err)
		}
		if got.Name != m.Name || got.Quantity != m.Quantity || got.Category != m.Category {
			t.Errorf("roundtrip mismatch: got %+v", got)
		}
		if !got.CreatedAt.Equal(m.CreatedAt) {
			t.Errorf("CreatedAt mismatch: got %v, want %v", got.CreatedAt, m.CreatedAt)
		}

		m.Quantity = 15
		m.Favorite = true
		if err := store.UpdateMedicine(m); err != nil {
			t.Fatalf("UpdateMedicine() failed: %v", err)
		}
		got, _ = store.GetMedicine("med-1")
		if got.Quantity != 15 || !got.Favorite {
			t.Errorf("update not applied: %+v", got)
		}

		if err := store.DeleteMedicine("med-1"); err != nil {
			t.Fatalf("DeleteMedicine() failed: %v", err)
		}
		if _, err := store.GetMedicine("med-1"); err == nil {
			t.Error("expected error getting deleted medicine")
		}
		if err := store.DeleteMedicine("med-1"); err == nil {
			t.Error("expected error deleting missing medicine")
		}
	})
}

func TestMedicineListOrdering(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		for _, m := range []models.Medicine{
			{ID: "a", Name: "Цитрамон", Quantity: 1, Category: "Другое", CreatedAt: testTime()},
			{ID: "b", Name: "Аспирин", Quantity: 1, Category: "Другое", CreatedAt: testTime()},
		} {
			if err := store.AddMedicine(m); err != nil {
				t.Fatalf("AddMedicine() failed: %v", err)
			}
		}

		all, err := store.GetAllMedicines()
		if err != nil {
			t.Fatalf("GetAllMedicines() failed: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 medicines, got %d", len(all))
		}
		if all[0].Name != "Аспирин" {
			t.Errorf("expected name ordering, got %q first", all[0].Name)
		}
	})
}

func TestAdjustMedicineQuantity(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		m := models.Medicine{ID: "med-1", Name: "X", Quantity: 3, Category: "Другое", CreatedAt: testTime()}
		if err := store.AddMedicine(m); err != nil {
			t.Fatalf("AddMedicine() failed: %v", err)
		}

		got, err := store.AdjustMedicineQuantity("med-1", -2)
		if err != nil {
			t.Fatalf("AdjustMedicineQuantity() failed: %v", err)
		}
		if got.Quantity != 1 {
			t.Errorf("expected quantity 1, got %d", got.Quantity)
		}

		// Must clamp at zero, never go negative
		got, err = store.AdjustMedicineQuantity("med-1", -5)
		if err != nil {
			t.Fatalf("AdjustMedicineQuantity() failed: %v", err)
		}
		if got.Quantity != 0 {
			t.Errorf("expected quantity clamped to 0, got %d", got.Quantity)
		}

		got, err = store.AdjustMedicineQuantity("med-1", 10)
		if err != nil {
			t.Fatalf("AdjustMedicineQuantity() failed: %v", err)
		}
		if got.Quantity != 10 {
			t.Errorf("expected quantity 10, got %d", got.Quantity)
		}

		if _, err := store.AdjustMedicineQuantity("missing", 1); err == nil {
			t.Error("expected error adjusting missing medicine")
		}
	})
}

func TestSetMedicineFavorite(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		m := models.Medicine{ID: "med-1", Name: "X", Quantity: 1, Category: "Другое", CreatedAt: testTime()}
		if err := store.AddMedicine(m); err != nil {
			t.Fatalf("AddMedicine() failed: %v", err)
		}

		if err := store.SetMedicineFavorite("med-1", true); err != nil {
			t.Fatalf("SetMedicineFavorite() failed: %v", err)
		}
		got, _ := store.GetMedicine("med-1")
		if !got.Favorite {
			t.Error("medicine should be marked favorite")
		}

		// Toggling twice restores the original state
		if err := store.SetMedicineFavorite("med-1", false); err != nil {
			t.Fatalf("SetMedicineFavorite() failed: %v", err)
		}
		got, _ = store.GetMedicine("med-1")
		if got.Favorite {
			t.Error("favorite flag should be cleared again")
		}

		if err := store.SetMedicineFavorite("missing", true); err == nil {
			t.Error("expected error toggling missing medicine")
		}
	})
}

func TestCategories(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		if err := store.AddCategory("Гомеопатия"); err != nil {
			t.Fatalf("AddCategory() failed: %v", err)
		}
		if err := store.AddCategory("Гомеопатия"); err == nil {
			t.Error("expected error adding duplicate category")
		}
		if err := store.AddCategory("Витамины"); err == nil {
			t.Error("expected error shadowing a built-in category")
		}

		custom, err := store.GetCustomCategories()
		if err != nil {
			t.Fatalf("GetCustomCategories() failed: %v", err)
		}
		if len(custom) != 1 || custom[0] != "Гомеопатия" {
			t.Errorf("unexpected custom categories: %v", custom)
		}

		if err := store.DeleteCategory("Витамины"); err == nil {
			t.Error("expected error deleting built-in category")
		}
		if err := store.DeleteCategory("Гомеопатия"); err != nil {
			t.Fatalf("DeleteCategory() failed: %v", err)
		}
		custom, _ = store.GetCustomCategories()
		if len(custom) != 0 {
			t.Errorf("expected no custom categories, got %v", custom)
		}
	})
}

func TestReminderRoundTrip(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		r := models.Reminder{
			ID:           "rem-1",
			MedicineName: "Ибупрофен",
			Dosage:       "1 таблетка",
			Time:         "09:00",
			Days:         []time.Weekday{time.Monday, time.Wednesday, time.Sunday},
			TriggerIDs:   []string{"t1", "t2", "t3"},
			CreatedAt:    testTime(),
		}
		if err := store.AddReminder(r); err != nil {
			t.Fatalf("AddReminder() failed: %v", err)
		}

		got, err := store.GetReminder("rem-1")
		if err != nil {
			t.Fatalf("GetReminder() failed: %v", err)
		}
		if len(got.Days) != 3 {
			t.Fatalf("expected 3 days, got %v", got.Days)
		}
		for i, wd := range r.Days {
			if got.Days[i] != wd {
				t.Errorf("day %d: got %v, want %v", i, got.Days[i], wd)
			}
		}
		if len(got.TriggerIDs) != 3 || got.TriggerIDs[0] != "t1" {
			t.Errorf("trigger ids mismatch: %v", got.TriggerIDs)
		}

		if err := store.DeleteReminder("rem-1"); err != nil {
			t.Fatalf("DeleteReminder() failed: %v", err)
		}
		if _, err := store.GetReminder("rem-1"); err == nil {
			t.Error("expected error getting deleted reminder")
		}
	})
}

func TestTriggersByOwner(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		now := testTime()
		triggers := []models.Trigger{
			{ID: "t1", Title: "A", Kind: models.TriggerWeekly, Weekday: 1, Time: "09:00", OwnerID: "rem-1", OwnerType: "reminder", CreatedAt: now},
			{ID: "t2", Title: "B", Kind: models.TriggerWeekly, Weekday: 3, Time: "09:00", OwnerID: "rem-1", OwnerType: "reminder", CreatedAt: now},
			{ID: "t3", Title: "C", Kind: models.TriggerOneShot, FireAt: now.Add(time.Hour), OwnerID: "rem-2", OwnerType: "reminder", CreatedAt: now},
		}
		for _, tr := range triggers {
			if err := store.AddTrigger(tr); err != nil {
				t.Fatalf("AddTrigger() failed: %v", err)
			}
		}

		got, err := store.GetTrigger("t3")
		if err != nil {
			t.Fatalf("GetTrigger() failed: %v", err)
		}
		if !got.FireAt.Equal(now.Add(time.Hour)) {
			t.Errorf("FireAt mismatch: got %v", got.FireAt)
		}
		if !got.LastFired.IsZero() {
			t.Errorf("LastFired should stay zero, got %v", got.LastFired)
		}

		if err := store.DeleteTriggersByOwner("rem-1"); err != nil {
			t.Fatalf("DeleteTriggersByOwner() failed: %v", err)
		}
		all, err := store.GetAllTriggers()
		if err != nil {
			t.Fatalf("GetAllTriggers() failed: %v", err)
		}
		if len(all) != 1 || all[0].ID != "t3" {
			t.Errorf("expected only t3 to survive, got %v", all)
		}

		// Deleting by owner with no matches is not an error
		if err := store.DeleteTriggersByOwner("rem-1"); err != nil {
			t.Errorf("DeleteTriggersByOwner() on empty owner failed: %v", err)
		}
	})
}

func TestNotificationLogs(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		now := testTime()
		logs := []models.NotificationLog{
			{ID: "l1", Title: "A", Timestamp: now.Add(-time.Hour), Type: "dose", ReminderID: "rem-1"},
			{ID: "l2", Title: "B", Timestamp: now, Type: "dose", ReminderID: "rem-1"},
			{ID: "l3", Title: "C", Timestamp: now.Add(-2 * time.Hour), Type: "appointment"},
		}
		for _, l := range logs {
			if err := store.AddNotificationLog(l); err != nil {
				t.Fatalf("AddNotificationLog() failed: %v", err)
			}
		}

		all, err := store.GetAllNotificationLogs()
		if err != nil {
			t.Fatalf("GetAllNotificationLogs() failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 logs, got %d", len(all))
		}
		// Newest first
		if all[0].ID != "l2" {
			t.Errorf("expected l2 first, got %s", all[0].ID)
		}

		if err := store.SetNotificationLogRead("l1", true); err != nil {
			t.Fatalf("SetNotificationLogRead() failed: %v", err)
		}
		all, _ = store.GetAllNotificationLogs()
		for _, l := range all {
			if l.ID == "l1" && !l.Read {
				t.Error("l1 should be marked read")
			}
		}

		// Delete by id is idempotent: repeating it for a gone entry succeeds
		if err := store.DeleteNotificationLog("l1"); err != nil {
			t.Fatalf("DeleteNotificationLog() failed: %v", err)
		}
		if err := store.DeleteNotificationLog("l1"); err != nil {
			t.Errorf("second DeleteNotificationLog() should be a no-op, got: %v", err)
		}
		if err := store.DeleteNotificationLog("never-existed"); err != nil {
			t.Errorf("DeleteNotificationLog() of unknown id should be a no-op, got: %v", err)
		}

		if err := store.DeleteNotificationLogsByReminder("rem-1"); err != nil {
			t.Fatalf("DeleteNotificationLogsByReminder() failed: %v", err)
		}
		all, _ = store.GetAllNotificationLogs()
		if len(all) != 1 || all[0].ID != "l3" {
			t.Errorf("expected only l3 to survive, got %v", all)
		}

		if err := store.ClearNotificationLogs(); err != nil {
			t.Fatalf("ClearNotificationLogs() failed: %v", err)
		}
		all, _ = store.GetAllNotificationLogs()
		if len(all) != 0 {
			t.Errorf("expected empty history, got %d entries", len(all))
		}
	})
}

func TestAppointmentRoundTrip(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		appointments := []models.Appointment{
			{ID: "a1", Doctor: "Иванова", Specialty: "Терапевт", Date: "2030-05-02", Time: "10:00", CreatedAt: testTime()},
			{ID: "a2", Doctor: "Петров", Specialty: "Кардиолог", Date: "2030-05-01", Time: "09:00", CreatedAt: testTime()},
		}
		for _, a := range appointments {
			if err := store.AddAppointment(a); err != nil {
				t.Fatalf("AddAppointment() failed: %v", err)
			}
		}

		all, err := store.GetAllAppointments()
		if err != nil {
			t.Fatalf("GetAllAppointments() failed: %v", err)
		}
		if len(all) != 2 || all[0].ID != "a2" {
			t.Errorf("expected chronological order with a2 first, got %v", all)
		}

		a := all[0]
		a.Time = "11:30"
		if err := store.UpdateAppointment(a); err != nil {
			t.Fatalf("UpdateAppointment() failed: %v", err)
		}
		got, _ := store.GetAppointment("a2")
		if got.Time != "11:30" {
			t.Errorf("update mismatch: %+v", got)
		}

		if err := store.DeleteAppointment("a2"); err != nil {
			t.Fatalf("DeleteAppointment() failed: %v", err)
		}
		if _, err := store.GetAppointment("a2"); err == nil {
			t.Error("expected error getting deleted appointment")
		}
	})
}

func TestProfileRoundTrip(t *testing.T) {
	withProviders(t, func(t *testing.T, store storage.Provider) {
		// Fresh store has an empty profile, not an error
		p, err := store.GetProfile()
		if err != nil {
			t.Fatalf("GetProfile() on fresh store failed: %v", err)
		}
		if p.FirstName != "" {
			t.Errorf("expected empty profile, got %+v", p)
		}

		want := models.Profile{FirstName: "Анна", LastName: "Козырева", BirthDate: "1990-04-12"}
		if err := store.SaveProfile(want); err != nil {
			t.Fatalf("SaveProfile() failed: %v", err)
		}
		got, err := store.GetProfile()
		if err != nil {
			t.Fatalf("GetProfile() failed: %v", err)
		}
		if got != want {
			t.Errorf("profile mismatch: got %+v, want %+v", got, want)
		}

		// Overwrite works
		want.FirstName = "Мария"
		if err := store.SaveProfile(want); err != nil {
			t.Fatalf("SaveProfile() overwrite failed: %v", err)
		}
		got, _ = store.GetProfile()
		if got.FirstName != "Мария" {
			t.Errorf("overwrite not applied: %+v", got)
		}
	})
}
