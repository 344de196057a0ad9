package model

import "sort"

// CurriculumPlan is the read-only output of plan generation for one track.
type CurriculumPlan struct {
	Track             Track              `json:"track"`
	GraduationCredits int                `json:"graduationCredits"`
	TermTargets       map[int]int        `json:"termTargets"`
	LockedByTerm      map[int][]CourseID `json:"lockedByTerm"`
	PlannedByTerm     map[int][]CourseID `json:"plannedByTerm"`
	Pool              []*Course          `json:"pool"`
	index             map[CourseID]*Course
}

// NewCurriculumPlan creates an empty plan over the given pool.
func NewCurriculumPlan(track Track, pool []*Course) *CurriculumPlan {
	p := &CurriculumPlan{
		Track:         track,
		TermTargets:   make(map[int]int),
		LockedByTerm:  make(map[int][]CourseID),
		PlannedByTerm: make(map[int][]CourseID),
		Pool:          pool,
		index:         make(map[CourseID]*Course, len(pool)),
	}
	for _, c := range pool {
		p.index[c.ID] = c
	}
	return p
}

// Lookup returns a copy of the pool course with the given id.
func (p *CurriculumPlan) Lookup(id CourseID) (*Course, bool) {
	c, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// Terms returns plan terms in ascending order.
func (p *CurriculumPlan) Terms() []int {
	terms := make([]int, 0, len(p.TermTargets))
	for t := range p.TermTargets {
		terms = append(terms, t)
	}
	sort.Ints(terms)
	return terms
}

// TermCourses resolves the planned ids of a term, locked courses first.
func (p *CurriculumPlan) TermCourses(term int) []*Course {
	var out []*Course
	for _, id := range p.PlannedByTerm[term] {
		if c, ok := p.Lookup(id); ok {
			out = append(out, c)
		}
	}
	return out
}

func (p *CurriculumPlan) TermCredits(term int) int {
	return SumCredits(p.TermCourses(term))
}

// IsLocked reports whether the course is mandatory in the given term.
func (p *CurriculumPlan) IsLocked(term int, id CourseID) bool {
	for _, l := range p.LockedByTerm[term] {
		if l == id {
			return true
		}
	}
	return false
}

type PlanCSVRow struct {
	Term       int    `csv:"term"`
	CourseID   string `csv:"course_id"`
	CourseName string `csv:"course_name"`
	Credits    int    `csv:"credits"`
	Required   bool   `csv:"required"`
	Locked     bool   `csv:"locked"`
	Area       string `csv:"area"`
	Slots      string `csv:"slots"`
}
