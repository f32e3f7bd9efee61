package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/akozyreva/medcab/internal/models"
)

// Store is the on-disk document layout of the JSON backend.
type Store struct {
	Version          int                               `json:"version"`
	Medicines        map[string]models.Medicine        `json:"medicines"`
	Categories       []string                          `json:"categories"` // custom only
	Reminders        map[string]models.Reminder        `json:"reminders"`
	Triggers         map[string]models.Trigger         `json:"triggers"`
	NotificationLogs map[string]models.NotificationLog `json:"notification_logs"`
	Appointments     map[string]models.Appointment     `json:"appointments"`
	Profile          models.Profile                    `json:"profile"`
}

// JSONStore keeps everything in a single JSON document. Every mutation runs
// under the mutex and rewrites the file, so read-modify-write sequences from
// concurrent callers cannot interleave.
type JSONStore struct {
	mu    sync.Mutex
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func newStoreDoc() *Store {
	return &Store{
		Version:          1,
		Medicines:        make(map[string]models.Medicine),
		Categories:       []string{},
		Reminders:        make(map[string]models.Reminder),
		Triggers:         make(map[string]models.Trigger),
		NotificationLogs: make(map[string]models.NotificationLog),
		Appointments:     make(map[string]models.Appointment),
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = newStoreDoc()
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'medcab init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Medicines == nil {
		s.store.Medicines = make(map[string]models.Medicine)
	}
	if s.store.Reminders == nil {
		s.store.Reminders = make(map[string]models.Reminder)
	}
	if s.store.Triggers == nil {
		s.store.Triggers = make(map[string]models.Trigger)
	}
	if s.store.NotificationLogs == nil {
		s.store.NotificationLogs = make(map[string]models.NotificationLog)
	}
	if s.store.Appointments == nil {
		s.store.Appointments = make(map[string]models.Appointment)
	}
	if s.store.Categories == nil {
		s.store.Categories = []string{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes through a temp file and renames it into place so a crashed
// write never leaves a truncated document behind.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *JSONStore) ensureLoaded() error {
	if s.store == nil {
		return s.load()
	}
	return nil
}

// Medicines

func (s *JSONStore) AddMedicine(m models.Medicine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Medicines[m.ID]; ok {
		return fmt.Errorf("medicine already exists: %s", m.ID)
	}
	s.store.Medicines[m.ID] = m
	return s.save()
}

func (s *JSONStore) GetMedicine(id string) (models.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return models.Medicine{}, err
	}
	m, ok := s.store.Medicines[id]
	if !ok {
		return models.Medicine{}, fmt.Errorf("medicine not found")
	}
	return m, nil
}

func (s *JSONStore) GetAllMedicines() ([]models.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	medicines := make([]models.Medicine, 0, len(s.store.Medicines))
	for _, m := range s.store.Medicines {
		medicines = append(medicines, m)
	}
	sortMedicines(medicines)
	return medicines, nil
}

func (s *JSONStore) UpdateMedicine(m models.Medicine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Medicines[m.ID]; !ok {
		return fmt.Errorf("medicine not found: %s", m.ID)
	}
	s.store.Medicines[m.ID] = m
	return s.save()
}

func (s *JSONStore) DeleteMedicine(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Medicines[id]; !ok {
		return fmt.Errorf("medicine not found: %s", id)
	}
	delete(s.store.Medicines, id)
	return s.save()
}

func (s *JSONStore) AdjustMedicineQuantity(id string, delta int) (models.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return models.Medicine{}, err
	}
	m, ok := s.store.Medicines[id]
	if !ok {
		return models.Medicine{}, fmt.Errorf("medicine not found: %s", id)
	}
	m.Quantity += delta
	if m.Quantity < 0 {
		m.Quantity = 0
	}
	s.store.Medicines[id] = m
	if err := s.save(); err != nil {
		return models.Medicine{}, err
	}
	return m, nil
}

func (s *JSONStore) SetMedicineFavorite(id string, favorite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	m, ok := s.store.Medicines[id]
	if !ok {
		return fmt.Errorf("medicine not found: %s", id)
	}
	m.Favorite = favorite
	s.store.Medicines[id] = m
	return s.save()
}

// Categories

func (s *JSONStore) GetCustomCategories() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	categories := make([]string, len(s.store.Categories))
	copy(categories, s.store.Categories)
	return categories, nil
}

func (s *JSONStore) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	if models.IsKnownCategory(name, s.store.Categories) {
		return fmt.Errorf("category already exists: %s", name)
	}
	s.store.Categories = append(s.store.Categories, name)
	return s.save()
}

func (s *JSONStore) DeleteCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if models.IsDefaultCategory(name) {
		return fmt.Errorf("cannot delete built-in category: %s", name)
	}
	for i, c := range s.store.Categories {
		if c == name {
			s.store.Categories = append(s.store.Categories[:i], s.store.Categories[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("category not found: %s", name)
}

// Reminders

func (s *JSONStore) AddReminder(r models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Reminders[r.ID]; ok {
		return fmt.Errorf("reminder already exists: %s", r.ID)
	}
	s.store.Reminders[r.ID] = r
	return s.save()
}

func (s *JSONStore) GetReminder(id string) (models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return models.Reminder{}, err
	}
	r, ok := s.store.Reminders[id]
	if !ok {
		return models.Reminder{}, fmt.Errorf("reminder not found")
	}
	return r, nil
}

func (s *JSONStore) GetAllReminders() ([]models.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	reminders := make([]models.Reminder, 0, len(s.store.Reminders))
	for _, r := range s.store.Reminders {
		reminders = append(reminders, r)
	}
	sortReminders(reminders)
	return reminders, nil
}

func (s *JSONStore) UpdateReminder(r models.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Reminders[r.ID]; !ok {
		return fmt.Errorf("reminder not found: %s", r.ID)
	}
	s.store.Reminders[r.ID] = r
	return s.save()
}

func (s *JSONStore) DeleteReminder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Reminders[id]; !ok {
		return fmt.Errorf("reminder not found: %s", id)
	}
	delete(s.store.Reminders, id)
	return s.save()
}

// Triggers

func (s *JSONStore) AddTrigger(t models.Trigger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Triggers[t.ID]; ok {
		return fmt.Errorf("trigger already exists: %s", t.ID)
	}
	s.store.Triggers[t.ID] = t
	return s.save()
}

func (s *JSONStore) GetTrigger(id string) (models.Trigger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return models.Trigger{}, err
	}
	t, ok := s.store.Triggers[id]
	if !ok {
		return models.Trigger{}, fmt.Errorf("trigger not found")
	}
	return t, nil
}

func (s *JSONStore) GetAllTriggers() ([]models.Trigger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	triggers := make([]models.Trigger, 0, len(s.store.Triggers))
	for _, t := range s.store.Triggers {
		triggers = append(triggers, t)
	}
	sortTriggers(triggers)
	return triggers, nil
}

func (s *JSONStore) UpdateTrigger(t models.Trigger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Triggers[t.ID]; !ok {
		return fmt.Errorf("trigger not found: %s", t.ID)
	}
	s.store.Triggers[t.ID] = t
	return s.save()
}

func (s *JSONStore) DeleteTrigger(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Triggers[id]; !ok {
		return fmt.Errorf("trigger not found: %s", id)
	}
	delete(s.store.Triggers, id)
	return s.save()
}

func (s *JSONStore) DeleteTriggersByOwner(ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	for id, t := range s.store.Triggers {
		if t.OwnerID == ownerID {
			delete(s.store.Triggers, id)
		}
	}
	return s.save()
}

// Notification logs

func (s *JSONStore) AddNotificationLog(l models.NotificationLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.NotificationLogs[l.ID] = l
	return s.save()
}

func (s *JSONStore) GetAllNotificationLogs() ([]models.NotificationLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	logs := make([]models.NotificationLog, 0, len(s.store.NotificationLogs))
	for _, l := range s.store.NotificationLogs {
		logs = append(logs, l)
	}
	sortNotificationLogs(logs)
	return logs, nil
}

func (s *JSONStore) SetNotificationLogRead(id string, read bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	l, ok := s.store.NotificationLogs[id]
	if !ok {
		return fmt.Errorf("notification log not found: %s", id)
	}
	l.Read = read
	s.store.NotificationLogs[id] = l
	return s.save()
}

// DeleteNotificationLog removes a history entry. Deleting an id that is
// already gone is a no-op.
func (s *JSONStore) DeleteNotificationLog(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	delete(s.store.NotificationLogs, id)
	return s.save()
}

func (s *JSONStore) DeleteNotificationLogsByReminder(reminderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	for id, l := range s.store.NotificationLogs {
		if l.ReminderID == reminderID {
			delete(s.store.NotificationLogs, id)
		}
	}
	return s.save()
}

func (s *JSONStore) ClearNotificationLogs() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.NotificationLogs = make(map[string]models.NotificationLog)
	return s.save()
}

// Appointments

func (s *JSONStore) AddAppointment(a models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Appointments[a.ID]; ok {
		return fmt.Errorf("appointment already exists: %s", a.ID)
	}
	s.store.Appointments[a.ID] = a
	return s.save()
}

func (s *JSONStore) GetAppointment(id string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return models.Appointment{}, err
	}
	a, ok := s.store.Appointments[id]
	if !ok {
		return models.Appointment{}, fmt.Errorf("appointment not found")
	}
	return a, nil
}

func (s *JSONStore) GetAllAppointments() ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	appointments := make([]models.Appointment, 0, len(s.store.Appointments))
	for _, a := range s.store.Appointments {
		appointments = append(appointments, a)
	}
	sortAppointments(appointments)
	return appointments, nil
}

func (s *JSONStore) UpdateAppointment(a models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Appointments[a.ID]; !ok {
		return fmt.Errorf("appointment not found: %s", a.ID)
	}
	s.store.Appointments[a.ID] = a
	return s.save()
}

func (s *JSONStore) DeleteAppointment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if _, ok := s.store.Appointments[id]; !ok {
		return fmt.Errorf("appointment not found: %s", id)
	}
	delete(s.store.Appointments, id)
	return s.save()
}

// Profile

func (s *JSONStore) GetProfile() (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return models.Profile{}, err
	}
	return s.store.Profile, nil
}

func (s *JSONStore) SaveProfile(p models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.store.Profile = p
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
