package schedule

import (
	"time"

	"github.com/jwalitptl/booking-portal/internal/model"
)

// DateKeyLayout is the calendar-date key used to bucket time-stamped records
// for day-oriented display.
const DateKeyLayout = "2006-01-02"

// DateKey returns t's calendar-date key. The instant is formatted as parsed,
// offset intact; a slot at 23:30-05:00 buckets on its own local day. Every
// day-bucketing in the portal goes through this one function.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// SlotGroup is one calendar day's worth of slots, in input order.
type SlotGroup struct {
	Date  string
	Slots []model.TimeSlot
}

// GroupSlotsByDate partitions slots into per-day groups. Groups appear in
// first-encounter order and each slot keeps its relative order within its
// group, so flattening the groups back yields a permutation of the input.
func GroupSlotsByDate(slots []model.TimeSlot) []SlotGroup {
	index := make(map[string]int, len(slots))
	var groups []SlotGroup
	for _, slot := range slots {
		key := DateKey(slot.StartTime.Time)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, SlotGroup{Date: key})
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}
	return groups
}

// AppointmentBook indexes a provider's appointments by calendar day. The
// highlighted calendar days and the selected-day detail list both read the
// same bucket map, so the two can never disagree.
type AppointmentBook struct {
	days    []string
	buckets map[string][]model.CalendarAppointment
}

func NewAppointmentBook(appts []model.CalendarAppointment) *AppointmentBook {
	book := &AppointmentBook{
		buckets: make(map[string][]model.CalendarAppointment, len(appts)),
	}
	for _, appt := range appts {
		key := DateKey(appt.StartTime.Time)
		if _, ok := book.buckets[key]; !ok {
			book.days = append(book.days, key)
		}
		book.buckets[key] = append(book.buckets[key], appt)
	}
	return book
}

// Days returns the distinct date keys with at least one appointment, in
// first-encounter order.
func (b *AppointmentBook) Days() []string {
	return b.days
}

// On returns the appointments falling on day's calendar date, in input order.
// Any date is a valid argument; days without appointments return nil.
func (b *AppointmentBook) On(day time.Time) []model.CalendarAppointment {
	return b.buckets[DateKey(day)]
}

// Count returns the number of appointments on day's calendar date.
func (b *AppointmentBook) Count(day time.Time) int {
	return len(b.buckets[DateKey(day)])
}

// HasAppointments reports whether any appointment falls on day.
func (b *AppointmentBook) HasAppointments(day time.Time) bool {
	return b.Count(day) > 0
}
