package storage

import (
	"sort"

	"github.com/akozyreva/medcab/internal/models"
)

// The JSON backend reads entities out of maps, so listings sort here to
// match the ordering the SQLite queries produce.

func sortMedicines(medicines []models.Medicine) {
	sort.Slice(medicines, func(i, j int) bool {
		return medicines[i].Name < medicines[j].Name
	})
}

func sortReminders(reminders []models.Reminder) {
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].CreatedAt.Before(reminders[j].CreatedAt)
	})
}

func sortTriggers(triggers []models.Trigger) {
	sort.Slice(triggers, func(i, j int) bool {
		return triggers[i].CreatedAt.Before(triggers[j].CreatedAt)
	})
}

func sortNotificationLogs(logs []models.NotificationLog) {
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
}

func sortAppointments(appointments []models.Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
}
