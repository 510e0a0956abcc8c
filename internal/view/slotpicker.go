package view

import (
	"time"

	"github.com/jwalitptl/booking-portal/internal/model"
	"github.com/jwalitptl/booking-portal/internal/schedule"
)

const (
	headerLayout = "Monday, January 2, 2006"
	clockLayout  = "3:04 PM"
)

// DayHeader formats t the way day headings render: full weekday, month name,
// day and year.
func DayHeader(t time.Time) string {
	return t.Format(headerLayout)
}

// Clock formats t's time of day for slot and appointment display.
func Clock(t time.Time) string {
	return t.Format(clockLayout)
}

// SlotButton is one selectable slot control.
type SlotButton struct {
	ID       string
	Label    string
	Disabled bool
	Selected bool
}

// SlotDay is one date heading plus its slot buttons.
type SlotDay struct {
	Date    string
	Header  string
	Buttons []SlotButton
}

// SlotPicker is the rendered model of the slot picker component. It holds no
// state of its own; the selected slot belongs to the caller and comes back in
// on every build.
type SlotPicker struct {
	Days []SlotDay
}

// BuildSlotPicker groups slots by calendar day and marks the selected slot.
// Selection is matched by slot ID. The day header is formatted from the first
// slot's own timestamp rather than by re-parsing the date key, so key and
// header always describe the same day.
func BuildSlotPicker(slots []model.TimeSlot, selectedID string) SlotPicker {
	groups := schedule.GroupSlotsByDate(slots)
	picker := SlotPicker{Days: make([]SlotDay, 0, len(groups))}
	for _, g := range groups {
		day := SlotDay{
			Date:    g.Date,
			Header:  g.Slots[0].StartTime.Format(headerLayout),
			Buttons: make([]SlotButton, 0, len(g.Slots)),
		}
		for _, slot := range g.Slots {
			day.Buttons = append(day.Buttons, SlotButton{
				ID:       slot.ID,
				Label:    slot.StartTime.Format(clockLayout),
				Disabled: !slot.Available,
				Selected: selectedID != "" && slot.ID == selectedID,
			})
		}
		picker.Days = append(picker.Days, day)
	}
	return picker
}
