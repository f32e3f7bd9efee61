package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/akozyreva/medcab/internal/reminders"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateMedicines:
		content = m.viewMedicines()
	case StateReminders:
		content = m.viewReminders()
	case StateNotifications:
		content = m.viewNotifications()
	case StateAppointments:
		content = m.viewAppointments()
	case StateAddMedicine:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var banner string
	if m.formError != "" {
		banner = dangerStyle.Render("Error: " + m.formError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Medicines", "Reminders", "Notifications", "Appointments"}
	activeTab := m.state
	if activeTab > StateAppointments {
		activeTab = m.previousState
	}
	for i, title := range tabTitles {
		if activeTab == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewMedicines() string {
	if len(m.medicines) == 0 {
		return docStyle.Render("No medicines. Press 'a' to add one.")
	}

	var b strings.Builder
	today := time.Now()
	for i, med := range m.medicines {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		name := med.Name
		if med.Favorite {
			name = favoriteStyle.Render("★ " + name)
		}

		line := fmt.Sprintf("%s%s [%s] qty: %d", cursor, name, med.Category, med.Quantity)
		if med.IsExpired(today) {
			line += " " + dangerStyle.Render("[EXPIRED]")
		} else if med.Quantity <= 3 {
			line += " " + warningStyle.Render("[low]")
		}
		b.WriteString(line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewReminders() string {
	if len(m.remindersList) == 0 {
		return docStyle.Render("No reminders.")
	}

	var b strings.Builder
	for i, r := range m.remindersList {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s at %s (%s)\n", cursor, r.MedicineName, r.Time, r.FormatDays()))
	}
	return docStyle.Render(b.String())
}

func (m Model) viewNotifications() string {
	if len(m.logs) == 0 {
		return docStyle.Render("No notifications.")
	}

	now := time.Now()
	var b strings.Builder
	lastBucket := ""
	for i, l := range m.logs {
		bucket := reminders.Bucket(l.Timestamp, now)
		if bucket != lastBucket {
			b.WriteString(bucketLabel(bucket) + ":\n")
			lastBucket = bucket
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		title := l.Title
		if !l.Read {
			title = unreadStyle.Render(title)
		}
		line := fmt.Sprintf("%s%s  %s", cursor, l.Timestamp.Format("15:04"), title)
		if l.Subtitle != "" {
			line += "  " + l.Subtitle
		}
		b.WriteString(line + "\n")
	}
	return docStyle.Render(b.String())
}

func bucketLabel(bucket string) string {
	switch bucket {
	case reminders.BucketToday:
		return "Today"
	case reminders.BucketYesterday:
		return "Yesterday"
	default:
		return "Earlier"
	}
}

func (m Model) viewAppointments() string {
	if len(m.appointments) == 0 {
		return docStyle.Render("No appointments.")
	}

	now := time.Now()
	var b strings.Builder
	for i, a := range m.appointments {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s  %s (%s)", cursor, a.Date, a.Time, a.Doctor, a.Specialty)
		if a.IsPast(now) {
			line += " " + warningStyle.Render("[past]")
		}
		b.WriteString(line + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return docStyle.Render(dangerStyle.Render("Delete selected item? (y/n)"))
}
