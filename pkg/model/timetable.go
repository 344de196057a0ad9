package model

// Slot holds every course that meets in one weekly period.
type Slot struct {
	Courses    []CourseID
	CourseRefs []*Course
}

type Day struct {
	Name  string
	Slots []*Slot
}

// Timetable is the weekly day x period grid of one term.
type Timetable struct {
	Days []*Day
}

/* NewTimetable creates an empty weekly grid. */
func NewTimetable() *Timetable {
	t := Timetable{Days: make([]*Day, len(DayNames))}
	for i := range t.Days {
		t.Days[i] = &Day{Name: DayNames[i], Slots: make([]*Slot, PeriodsPerDay)}
		for j := 0; j < PeriodsPerDay; j++ {
			t.Days[i].Slots[j] = new(Slot)
		}
	}
	return &t
}

func (t *Timetable) slot(ts TimeSlot) *Slot {
	day, period, ok := ts.Position()
	if !ok {
		return nil
	}
	return t.Days[day].Slots[period]
}

// IsAvailable checks if nothing meets in the given period.
func (t *Timetable) IsAvailable(ts TimeSlot) bool {
	s := t.slot(ts)
	return s != nil && len(s.Courses) == 0
}

// Place puts the course into all of its periods.
// Returns false and leaves the grid untouched if any period is taken.
func (t *Timetable) Place(c *Course) bool {
	for _, ts := range c.Slots {
		if !t.IsAvailable(ts) {
			return false
		}
	}
	t.Add(c)
	return true
}

// Add puts the course into its periods without checking occupancy.
func (t *Timetable) Add(c *Course) {
	for _, ts := range c.Slots {
		if s := t.slot(ts); s != nil {
			s.Courses = append(s.Courses, c.ID)
			s.CourseRefs = append(s.CourseRefs, c)
		}
	}
}

// Collisions lists every period holding more than one course.
func (t *Timetable) Collisions() map[TimeSlot][]CourseID {
	out := make(map[TimeSlot][]CourseID)
	for _, day := range t.Days {
		for i, s := range day.Slots {
			if len(s.Courses) > 1 {
				ts := TimeSlot(day.Name + "-" + string(rune('1'+i)))
				out[ts] = append([]CourseID(nil), s.Courses...)
			}
		}
	}
	return out
}
