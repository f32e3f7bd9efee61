package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/akozyreva/medcab/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateAddMedicine:
			return m.updateForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.state == StateAddMedicine && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.state = (m.state + 1) % 4
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.state = (m.state + 3) % 4
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		if m.state == StateMedicines {
			custom, _ := m.store.GetCustomCategories()
			m.medicineForm = &MedicineFormModel{Quantity: "1"}
			m.form = newMedicineForm(m.medicineForm, models.MergeCategories(custom))
			m.formError = ""
			m.previousState = m.state
			m.state = StateAddMedicine
			return m, m.form.Init()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if id := m.selectedID(); id != "" {
			m.deleteTarget = id
			m.previousState = m.state
			m.state = StateConfirmDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.Favorite):
		if m.state == StateMedicines && m.cursor < len(m.medicines) {
			med := m.medicines[m.cursor]
			_ = m.store.SetMedicineFavorite(med.ID, !med.Favorite)
			m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleRead):
		if m.state == StateNotifications && m.cursor < len(m.logs) {
			l := m.logs[m.cursor]
			_ = m.store.SetNotificationLogRead(l.ID, !l.Read)
			m.reload()
		}
		return m, nil
	}

	return m, nil
}

// selectedID returns the id of the highlighted row on the active tab.
func (m *Model) selectedID() string {
	switch m.state {
	case StateMedicines:
		if m.cursor < len(m.medicines) {
			return m.medicines[m.cursor].ID
		}
	case StateReminders:
		if m.cursor < len(m.remindersList) {
			return m.remindersList[m.cursor].ID
		}
	case StateNotifications:
		if m.cursor < len(m.logs) {
			return m.logs[m.cursor].ID
		}
	case StateAppointments:
		if m.cursor < len(m.appointments) {
			return m.appointments[m.cursor].ID
		}
	}
	return ""
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if err := m.saveMedicineForm(); err != nil {
			m.formError = err.Error()
		}
		m.state = m.previousState
		m.form = nil
		m.reload()
	}

	return m, cmd
}

func (m *Model) saveMedicineForm() error {
	quantity := 1
	if m.medicineForm.Quantity != "" {
		n, err := strconv.Atoi(m.medicineForm.Quantity)
		if err != nil {
			return err
		}
		quantity = n
	}

	med := models.Medicine{
		ID:             uuid.New().String(),
		Name:           m.medicineForm.Name,
		Quantity:       quantity,
		Dosage:         m.medicineForm.Dosage,
		ExpirationDate: m.medicineForm.Expires,
		Category:       m.medicineForm.Category,
		CreatedAt:      time.Now(),
	}
	if err := med.Validate(); err != nil {
		return err
	}
	return m.store.AddMedicine(med)
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.previousState {
		case StateMedicines:
			_ = m.store.DeleteMedicine(m.deleteTarget)
		case StateReminders:
			// Cancelling through the service cleans up triggers and logs too
			_ = m.service.Cancel(m.deleteTarget)
		case StateNotifications:
			_ = m.store.DeleteNotificationLog(m.deleteTarget)
		case StateAppointments:
			_ = m.store.DeleteAppointment(m.deleteTarget)
		}
		m.deleteTarget = ""
		m.state = m.previousState
		m.reload()
		return m, nil
	case "n", "N", "esc":
		m.deleteTarget = ""
		m.state = m.previousState
		return m, nil
	}
	return m, nil
}
