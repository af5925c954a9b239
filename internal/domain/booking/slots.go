package booking

import (
	"time"
)

const (
	DateLayout = "2006-01-02"
	hmLayout   = "15:04"
)

// WorkDay describes the clinic's opening hours. Slots never overlap the lunch break.
type WorkDay struct {
	Start      string
	End        string
	LunchStart string
	LunchEnd   string
	SlotLength time.Duration
}

var ClinicDay = WorkDay{
	Start:      "09:00",
	End:        "17:00",
	LunchStart: "12:00",
	LunchEnd:   "14:00",
	SlotLength: time.Hour,
}

var catalog = ClinicDay.Slots()

// Slots enumerates the bookable windows of the day as "HH:MM-HH:MM" labels.
func (d WorkDay) Slots() []string {
	parseHM := func(hm string) time.Time {
		t, _ := time.Parse(hmLayout, hm)
		return t
	}

	dayStart := parseHM(d.Start)
	dayEnd := parseHM(d.End)

	hasLunch := d.LunchStart != "" && d.LunchEnd != ""
	var lunchStart, lunchEnd time.Time
	if hasLunch {
		lunchStart = parseHM(d.LunchStart)
		lunchEnd = parseHM(d.LunchEnd)
	}

	var slots []string
	for cur := dayStart; !cur.Add(d.SlotLength).After(dayEnd); cur = cur.Add(d.SlotLength) {
		slotEnd := cur.Add(d.SlotLength)
		if hasLunch && cur.Before(lunchEnd) && slotEnd.After(lunchStart) {
			continue
		}
		slots = append(slots, cur.Format(hmLayout)+"-"+slotEnd.Format(hmLayout))
	}
	return slots
}

// Catalog returns a copy of the fixed slot catalog in day order.
func Catalog() []string {
	return append([]string(nil), catalog...)
}

func IsValidSlot(slot string) bool {
	for _, s := range catalog {
		if s == slot {
			return true
		}
	}
	return false
}

// Available returns the catalog minus the booked slots, keeping catalog order.
func Available(booked []string) []string {
	taken := make(map[string]bool, len(booked))
	for _, s := range booked {
		taken[s] = true
	}

	out := make([]string, 0, len(catalog))
	for _, s := range catalog {
		if !taken[s] {
			out = append(out, s)
		}
	}
	return out
}

func IsValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// SlotStart is the moment a slot begins on the given date in loc.
func SlotStart(date, slot string, loc *time.Location) (time.Time, error) {
	if len(slot) < len(hmLayout) {
		return time.Time{}, &time.ParseError{Layout: hmLayout, Value: slot}
	}
	return time.ParseInLocation(DateLayout+" "+hmLayout, date+" "+slot[:len(hmLayout)], loc)
}
