package storage

import "github.com/akozyreva/medcab/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Medicines
	AddMedicine(models.Medicine) error
	GetMedicine(id string) (models.Medicine, error)
	GetAllMedicines() ([]models.Medicine, error)
	UpdateMedicine(models.Medicine) error
	DeleteMedicine(id string) error
	// AdjustMedicineQuantity atomically changes the stock count by delta,
	// clamping at zero, and returns the updated medicine.
	AdjustMedicineQuantity(id string, delta int) (models.Medicine, error)
	SetMedicineFavorite(id string, favorite bool) error

	// Categories (custom only; defaults are compiled in)
	GetCustomCategories() ([]string, error)
	AddCategory(name string) error
	DeleteCategory(name string) error

	// Reminders
	AddReminder(models.Reminder) error
	GetReminder(id string) (models.Reminder, error)
	GetAllReminders() ([]models.Reminder, error)
	UpdateReminder(models.Reminder) error
	DeleteReminder(id string) error

	// Triggers (scheduler state)
	AddTrigger(models.Trigger) error
	GetTrigger(id string) (models.Trigger, error)
	GetAllTriggers() ([]models.Trigger, error)
	UpdateTrigger(models.Trigger) error
	DeleteTrigger(id string) error
	DeleteTriggersByOwner(ownerID string) error

	// Notification logs
	AddNotificationLog(models.NotificationLog) error
	GetAllNotificationLogs() ([]models.NotificationLog, error)
	SetNotificationLogRead(id string, read bool) error
	// DeleteNotificationLog removes a single entry; a missing id is a no-op.
	DeleteNotificationLog(id string) error
	DeleteNotificationLogsByReminder(reminderID string) error
	ClearNotificationLogs() error

	// Appointments
	AddAppointment(models.Appointment) error
	GetAppointment(id string) (models.Appointment, error)
	GetAllAppointments() ([]models.Appointment, error)
	UpdateAppointment(models.Appointment) error
	DeleteAppointment(id string) error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Utils
	GetConfigPath() string
}
