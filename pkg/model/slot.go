package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSlot identifies one weekly period, e.g. "Mon-1".
type TimeSlot string

const PeriodsPerDay = 3

var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// AllTimeSlots returns the closed weekly grid in day-major order.
func AllTimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, len(DayNames)*PeriodsPerDay)
	for _, d := range DayNames {
		for p := 1; p <= PeriodsPerDay; p++ {
			slots = append(slots, TimeSlot(fmt.Sprintf("%s-%d", d, p)))
		}
	}
	return slots
}

// Position returns the zero based day and period of the slot.
func (t TimeSlot) Position() (day int, period int, ok bool) {
	name, num, found := strings.Cut(string(t), "-")
	if !found {
		return 0, 0, false
	}
	day = -1
	for i, d := range DayNames {
		if d == name {
			day = i
			break
		}
	}
	p, err := strconv.Atoi(num)
	if day < 0 || err != nil || p < 1 || p > PeriodsPerDay {
		return 0, 0, false
	}
	return day, p - 1, true
}

func (t TimeSlot) Valid() bool {
	_, _, ok := t.Position()
	return ok
}

// ParseTimeSlots splits a "|" separated slot list. Empty input yields no slots.
func ParseTimeSlots(s string) ([]TimeSlot, error) {
	var slots []TimeSlot
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		slot := TimeSlot(part)
		if !slot.Valid() {
			return nil, fmt.Errorf("invalid time slot %q", part)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func JoinTimeSlots(slots []TimeSlot) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = string(s)
	}
	return strings.Join(parts, "|")
}
