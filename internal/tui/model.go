package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/akozyreva/medcab/internal/models"
	"github.com/akozyreva/medcab/internal/reminders"
	"github.com/akozyreva/medcab/internal/storage"
)

type SessionState int

const (
	StateMedicines SessionState = iota
	StateReminders
	StateNotifications
	StateAppointments
	StateAddMedicine
	StateConfirmDelete
)

// MedicineFormModel backs the huh add-medicine form.
type MedicineFormModel struct {
	Name     string
	Category string
	Quantity string
	Dosage   string
	Expires  string
}

type Model struct {
	store         storage.Provider
	service       *reminders.Service
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	medicines     []models.Medicine
	remindersList []models.Reminder
	logs          []models.NotificationLog
	appointments  []models.Appointment

	cursor       int
	form         *huh.Form
	medicineForm *MedicineFormModel
	formError    string
	deleteTarget string
	quitting     bool
	width        int
	height       int
}

func NewModel(store storage.Provider, service *reminders.Service) Model {
	m := Model{
		store:   store,
		service: service,
		state:   StateMedicines,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.reload()
	return m
}

// reload refreshes all tab data from the store.
func (m *Model) reload() {
	if medicines, err := m.store.GetAllMedicines(); err == nil {
		m.medicines = medicines
	}
	if rs, err := m.store.GetAllReminders(); err == nil {
		m.remindersList = rs
	}
	if logs, err := m.store.GetAllNotificationLogs(); err == nil {
		m.logs = logs
	}
	if appointments, err := m.store.GetAllAppointments(); err == nil {
		m.appointments = appointments
	}
	if m.cursor >= m.listLen() {
		m.cursor = 0
	}
}

// listLen returns the number of rows on the active tab.
func (m *Model) listLen() int {
	switch m.state {
	case StateMedicines:
		return len(m.medicines)
	case StateReminders:
		return len(m.remindersList)
	case StateNotifications:
		return len(m.logs)
	case StateAppointments:
		return len(m.appointments)
	default:
		return 0
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newMedicineForm(fm *MedicineFormModel, categories []string) *huh.Form {
	options := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		options[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(huh.ValidateNotEmpty()),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&fm.Category),
			huh.NewInput().
				Title("Quantity").
				Value(&fm.Quantity).
				Placeholder("1"),
			huh.NewInput().
				Title("Dosage").
				Value(&fm.Dosage).
				Placeholder("1 tablet"),
			huh.NewInput().
				Title("Expires (YYYY-MM-DD)").
				Value(&fm.Expires),
		),
	)
}
