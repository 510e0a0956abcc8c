package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/booking-portal/internal/model"
	"github.com/jwalitptl/booking-portal/internal/view"
)

func appt(t *testing.T, id, start, end, patient, status string) model.CalendarAppointment {
	t.Helper()
	return model.CalendarAppointment{
		ID:          id,
		StartTime:   mustTime(t, start),
		EndTime:     mustTime(t, end),
		PatientName: patient,
		Reason:      "checkup",
		Status:      status,
	}
}

func marchAppointments(t *testing.T) []model.CalendarAppointment {
	return []model.CalendarAppointment{
		appt(t, "a1", "2024-03-01T09:00:00Z", "2024-03-01T09:30:00Z", "Ada Lovelace", "confirmed"),
		appt(t, "a2", "2024-03-02T10:00:00Z", "2024-03-02T10:30:00Z", "Grace Hopper", ""),
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildCalendarGridStartsMonday(t *testing.T) {
	cal := view.BuildCalendar(nil, 2024, time.March, day(2024, 3, 1))

	assert.Equal(t, "March 2024", cal.Title)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, cal.Weekdays)

	// March 2024 starts on a Friday; a Monday-first grid leads with Feb 26
	// and runs exactly five weeks through Sunday March 31.
	require.Len(t, cal.Weeks, 5)
	first := cal.Weeks[0][0]
	assert.Equal(t, 26, first.Day)
	assert.False(t, first.InMonth)

	last := cal.Weeks[4][6]
	assert.Equal(t, 31, last.Day)
	assert.True(t, last.InMonth)

	for _, week := range cal.Weeks {
		require.Len(t, week, 7)
		assert.Equal(t, time.Monday, week[0].Date.Weekday())
	}
}

func TestBuildCalendarHighlightsDaysWithAppointments(t *testing.T) {
	cal := view.BuildCalendar(marchAppointments(t), 2024, time.March, day(2024, 3, 2))

	var highlighted []string
	for _, week := range cal.Weeks {
		for _, d := range week {
			if d.HasAppointments {
				highlighted = append(highlighted, d.Key)
			}
		}
	}
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, highlighted)
}

func TestBuildCalendarSelectedDayDetail(t *testing.T) {
	cal := view.BuildCalendar(marchAppointments(t), 2024, time.March, day(2024, 3, 2))

	assert.Equal(t, "Saturday, March 2, 2024", cal.Header)
	assert.False(t, cal.Empty)
	require.Len(t, cal.Entries, 1)

	entry := cal.Entries[0]
	assert.Equal(t, "Grace Hopper", entry.PatientName)
	assert.Equal(t, "10:00 AM - 10:30 AM", entry.TimeRange)
	assert.Equal(t, "checkup", entry.Reason)
}

func TestBuildCalendarStatusFallback(t *testing.T) {
	cal := view.BuildCalendar(marchAppointments(t), 2024, time.March, day(2024, 3, 2))

	// a2 carries no status and renders the default badge.
	require.Len(t, cal.Entries, 1)
	assert.Equal(t, view.DefaultStatus, cal.Entries[0].Status)
}

func TestBuildCalendarEmptyDay(t *testing.T) {
	cal := view.BuildCalendar(marchAppointments(t), 2024, time.March, day(2024, 3, 15))

	assert.True(t, cal.Empty)
	assert.Empty(t, cal.Entries)
}

func TestBuildCalendarMarksSelectedCell(t *testing.T) {
	cal := view.BuildCalendar(nil, 2024, time.March, day(2024, 3, 15))

	var selected []string
	for _, week := range cal.Weeks {
		for _, d := range week {
			if d.Selected {
				selected = append(selected, d.Key)
			}
		}
	}
	assert.Equal(t, []string{"2024-03-15"}, selected)
}

func TestBuildCalendarExposesCounts(t *testing.T) {
	appts := append(marchAppointments(t),
		appt(t, "a3", "2024-03-01T11:00:00Z", "2024-03-01T11:30:00Z", "Alan Turing", "confirmed"))
	cal := view.BuildCalendar(appts, 2024, time.March, day(2024, 3, 1))

	for _, week := range cal.Weeks {
		for _, d := range week {
			switch d.Key {
			case "2024-03-01":
				assert.Equal(t, 2, d.Count)
			case "2024-03-02":
				assert.Equal(t, 1, d.Count)
			default:
				assert.Zero(t, d.Count)
			}
		}
	}
}
