package view

import (
	"strings"
	"time"

	"github.com/jwalitptl/booking-portal/internal/model"
	"github.com/jwalitptl/booking-portal/internal/schedule"
)

// EmptyDayMessage is shown when the selected day has no appointments.
const EmptyDayMessage = "No appointments scheduled for this day"

// DefaultStatus is displayed when an appointment carries no status.
const DefaultStatus = "confirmed"

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Day             int
	Date            time.Time
	Key             string
	InMonth         bool
	Selected        bool
	HasAppointments bool
	// Count is exposed for a per-day badge the template does not render yet.
	Count int
}

// AppointmentEntry is one row of the selected-day detail panel.
type AppointmentEntry struct {
	ID          string
	PatientName string
	TimeRange   string
	Status      string
	Reason      string
}

// Calendar is the rendered model of the provider calendar: a Monday-first
// month grid with day highlighting plus the detail panel for the selected
// day. The selected date belongs to the caller; any date is accepted.
type Calendar struct {
	Title    string
	Weekdays []string
	Weeks    [][]CalendarDay
	Selected time.Time
	Header   string
	Entries  []AppointmentEntry
	Empty    bool
}

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// BuildCalendar lays out year/month as weeks starting on Monday and fills the
// detail panel for the selected date. Day highlighting and the detail list
// are both answered by the same appointment book, so the set of highlighted
// days is exactly the set of distinct date keys in the input.
func BuildCalendar(appts []model.CalendarAppointment, year int, month time.Month, selected time.Time) Calendar {
	book := schedule.NewAppointmentBook(appts)

	first := time.Date(year, month, 1, 0, 0, 0, 0, selected.Location())
	// Back up to the Monday on or before the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	cursor := first.AddDate(0, 0, -offset)

	cal := Calendar{
		Title:    first.Format("January 2006"),
		Weekdays: weekdayNames,
		Selected: selected,
		Header:   selected.Format(headerLayout),
	}

	for cursor.Month() == month || cursor.Before(first) || len(cal.Weeks) == 0 {
		week := make([]CalendarDay, 0, 7)
		for i := 0; i < 7; i++ {
			week = append(week, CalendarDay{
				Day:             cursor.Day(),
				Date:            cursor,
				Key:             schedule.DateKey(cursor),
				InMonth:         cursor.Month() == month,
				Selected:        schedule.SameDay(cursor, selected),
				HasAppointments: book.HasAppointments(cursor),
				Count:           book.Count(cursor),
			})
			cursor = cursor.AddDate(0, 0, 1)
		}
		cal.Weeks = append(cal.Weeks, week)
	}

	for _, appt := range book.On(selected) {
		cal.Entries = append(cal.Entries, AppointmentEntry{
			ID:          appt.ID,
			PatientName: appt.PatientName,
			TimeRange:   appt.StartTime.Format(clockLayout) + " - " + appt.EndTime.Format(clockLayout),
			Status:      statusOrDefault(appt.Status),
			Reason:      appt.Reason,
		})
	}
	cal.Empty = len(cal.Entries) == 0

	return cal
}

func statusOrDefault(status string) string {
	if strings.TrimSpace(status) == "" {
		return DefaultStatus
	}
	return status
}
