package sim

import (
	"fmt"
	"slices"

	"github.com/rhyrak/campus-sim/pkg/model"
)

func anyConflict(courses []*model.Course) bool {
	_, _, ok := firstConflict(courses, func(int, int) bool { return true })
	return ok
}

// firstConflict finds the first pair i < j that share a slot and that the
// filter accepts.
func firstConflict(courses []*model.Course, accept func(i, j int) bool) (int, int, bool) {
	for i := 0; i < len(courses); i++ {
		for j := i + 1; j < len(courses); j++ {
			if courses[i].ConflictsWith(courses[j]) && accept(i, j) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func (e *Engine) isLocked(id model.CourseID) bool {
	return e.Plan.IsLocked(e.TermIndex(), id)
}

// AutoPlanTerm adds the term's mandatory courses and builds the recommended
// list: retakes first, then the planned courses not yet passed. With
// AutoEnroll the recommendations that fit the timetable are enrolled too.
func (e *Engine) AutoPlanTerm() {
	s := e.State
	term := e.TermIndex()

	var retakes []*model.Course
	failed := make([]model.CourseID, 0, len(s.Failed))
	for id := range s.Failed {
		failed = append(failed, id)
	}
	slices.Sort(failed)
	for _, id := range failed {
		if c, ok := e.Plan.Lookup(id); ok {
			retakes = append(retakes, c)
		}
	}

	var locked, planned []*model.Course
	for _, id := range e.Plan.PlannedByTerm[term] {
		if s.Completed[id] {
			continue
		}
		c, ok := e.Plan.Lookup(id)
		if !ok {
			continue
		}
		switch {
		case e.isLocked(id):
			locked = append(locked, c)
		case !s.Failed[id]:
			planned = append(planned, c)
		}
	}

	for _, c := range locked {
		if !s.enrolled(c.ID) {
			s.Courses = append(s.Courses, c)
		}
	}

	seen := make(map[model.CourseID]bool)
	s.Recommended = s.Recommended[:0]
	for _, c := range slices.Concat(retakes, planned) {
		if seen[c.ID] || s.enrolled(c.ID) {
			continue
		}
		seen[c.ID] = true
		if e.autoEnroll && !c.ConflictsWithAny(s.Courses) {
			s.Courses = append(s.Courses, c)
			continue
		}
		s.Recommended = append(s.Recommended, c)
	}

	if anyConflict(s.Courses) {
		e.logger.Warn("timetable has conflicts", "term", term)
	}
	e.logger.Debug("term planned",
		"term", term,
		"locked", len(locked),
		"enrolled", len(s.Courses),
		"credits", model.SumCredits(s.Courses),
		"recommended", len(s.Recommended))
}

// ResolveConflicts drops courses until the timetable is conflict free.
// A mandatory course is never dropped; between two optional courses the
// harder one goes. It returns the dropped courses.
func (e *Engine) ResolveConflicts() []*model.Course {
	s := e.State
	var dropped []*model.Course
	droppable := func(i, j int) bool {
		return !e.isLocked(s.Courses[i].ID) || !e.isLocked(s.Courses[j].ID)
	}
	for guard := 0; guard < e.rules.ConflictGuard; guard++ {
		i, j, ok := firstConflict(s.Courses, droppable)
		if !ok {
			break
		}
		a, b := s.Courses[i], s.Courses[j]
		drop := j
		if !e.isLocked(a.ID) && (e.isLocked(b.ID) || a.Difficulty >= b.Difficulty) {
			drop = i
		}
		dropped = append(dropped, s.Courses[drop])
		e.logger.Info("dropped course to resolve a conflict", "course", s.Courses[drop].Name)
		s.Courses = slices.Delete(s.Courses, drop, drop+1)
	}
	if anyConflict(s.Courses) {
		e.logger.Warn("conflict between mandatory courses left unresolved", "term", e.TermIndex())
	}
	return dropped
}

// Enroll adds a pool course that has not been passed yet.
func (e *Engine) Enroll(id model.CourseID) error {
	s := e.State
	c, ok := e.Plan.Lookup(id)
	switch {
	case !ok:
		return fmt.Errorf("enroll %s: unknown course", id)
	case s.Completed[id]:
		return fmt.Errorf("enroll %s: already passed", id)
	case s.enrolled(id):
		return nil
	case c.ConflictsWithAny(s.Courses):
		return fmt.Errorf("enroll %s: %w", id, ErrConflict)
	}
	s.Courses = append(s.Courses, c)
	s.Recommended = slices.DeleteFunc(s.Recommended, func(r *model.Course) bool { return r.ID == id })
	return nil
}

// Drop removes an optional course from this term.
func (e *Engine) Drop(id model.CourseID) error {
	if e.isLocked(id) {
		return fmt.Errorf("drop %s: %w", id, ErrLocked)
	}
	e.State.Courses = slices.DeleteFunc(e.State.Courses, func(c *model.Course) bool { return c.ID == id })
	return nil
}
